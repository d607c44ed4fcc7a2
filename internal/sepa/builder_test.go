package sepa

import (
	"fmt"
	"testing"
	"time"

	"github.com/ginjaninja78/csv-to-sepa-xml/internal/config"
	"github.com/ginjaninja78/csv-to-sepa-xml/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock pins every timestamp-derived identifier for the tests.
func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)
}

func testBuilder() *Builder {
	return &Builder{Clock: fixedClock}
}

func testDebtor() config.DebtorProfile {
	return config.DebtorProfile{
		Name: config.DefaultCompanyName,
		IBAN: config.DefaultCompanyIBAN,
		BIC:  config.DefaultCompanyBIC,
	}
}

func payment(name, amount string) types.ValidatedPayment {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}
	return types.ValidatedPayment{
		Name:      name,
		IBAN:      "DE44500105175407324931",
		BIC:       "COBADEFFXXX",
		Reference: "ref",
		Amount:    value,
	}
}

func TestBuildHeaderAggregation(t *testing.T) {
	payments := []types.ValidatedPayment{
		payment("A", "100.10"),
		payment("B", "200.20"),
		payment("C", "0.03"),
	}

	doc := testBuilder().Build(payments, testDebtor())

	hdr := doc.CstmrCdtTrfInitn.GrpHdr
	inf := doc.CstmrCdtTrfInitn.PmtInf

	assert.Equal(t, "MSG20240315103000", hdr.MsgId)
	assert.Equal(t, "2024-03-15T10:30:00", hdr.CreDtTm)
	assert.Equal(t, "PMT20240315103000", inf.PmtInfId)
	assert.Equal(t, "2024-03-15", inf.ReqdExctnDt)

	// Counts and control sums must agree across both levels.
	assert.Equal(t, "3", hdr.NbOfTxs)
	assert.Equal(t, "3", inf.NbOfTxs)
	assert.Equal(t, "300.33", hdr.CtrlSum)
	assert.Equal(t, "300.33", inf.CtrlSum)

	assert.Equal(t, "TRF", inf.PmtMtd)
	assert.Equal(t, "SEPA", inf.PmtTpInf.SvcLvl.Cd)
	assert.Equal(t, "SLEV", inf.ChrgBr)

	assert.Equal(t, config.DefaultCompanyName, hdr.InitgPty.Nm)
	assert.Equal(t, config.DefaultCompanyName, inf.Dbtr.Nm)
	assert.Equal(t, config.DefaultCompanyIBAN, inf.DbtrAcct.Id.IBAN)
	assert.Equal(t, config.DefaultCompanyBIC, inf.DbtrAgt.FinInstnId.BIC)
}

// The classic float trap: 0.1 + 0.2 style sums must not leak rounding
// noise into the control sum.
func TestBuildControlSumIsExactDecimalArithmetic(t *testing.T) {
	var payments []types.ValidatedPayment
	for i := 0; i < 100; i++ {
		payments = append(payments, payment(fmt.Sprintf("P%d", i), "0.10"))
	}

	doc := testBuilder().Build(payments, testDebtor())
	assert.Equal(t, "10.00", doc.CstmrCdtTrfInitn.GrpHdr.CtrlSum)
}

func TestBuildTransactionsFollowInputOrder(t *testing.T) {
	payments := []types.ValidatedPayment{
		payment("First", "1.00"),
		payment("Second", "2.00"),
		payment("Third", "3.00"),
	}

	doc := testBuilder().Build(payments, testDebtor())
	txs := doc.CstmrCdtTrfInitn.PmtInf.CdtTrfTxInf
	require.Len(t, txs, 3)

	assert.Equal(t, "First", txs[0].Cdtr.Nm)
	assert.Equal(t, "Second", txs[1].Cdtr.Nm)
	assert.Equal(t, "Third", txs[2].Cdtr.Nm)

	// EndToEndId: date stamp plus 1-based index, zero-padded to 4 digits.
	assert.Equal(t, "E2E202403150001", txs[0].PmtId.EndToEndId)
	assert.Equal(t, "E2E202403150002", txs[1].PmtId.EndToEndId)
	assert.Equal(t, "E2E202403150003", txs[2].PmtId.EndToEndId)

	// Amounts are formatted with exactly 2 decimals in EUR.
	assert.Equal(t, "1.00", txs[0].Amt.InstdAmt.Value)
	assert.Equal(t, "EUR", txs[0].Amt.InstdAmt.Ccy)
}

func TestBuildEndToEndIdsUniqueWithinDocument(t *testing.T) {
	var payments []types.ValidatedPayment
	for i := 0; i < 50; i++ {
		payments = append(payments, payment("P", "1.00"))
	}

	doc := testBuilder().Build(payments, testDebtor())

	seen := make(map[string]bool)
	for _, tx := range doc.CstmrCdtTrfInitn.PmtInf.CdtTrfTxInf {
		assert.False(t, seen[tx.PmtId.EndToEndId], "duplicate %s", tx.PmtId.EndToEndId)
		seen[tx.PmtId.EndToEndId] = true
	}
}

// The index restarts at 1 for every build call; cross-call uniqueness is
// explicitly not promised.
func TestBuildIndexRestartsPerBuild(t *testing.T) {
	b := testBuilder()
	first := b.Build([]types.ValidatedPayment{payment("A", "1.00")}, testDebtor())
	second := b.Build([]types.ValidatedPayment{payment("B", "1.00")}, testDebtor())

	assert.Equal(t,
		first.CstmrCdtTrfInitn.PmtInf.CdtTrfTxInf[0].PmtId.EndToEndId,
		second.CstmrCdtTrfInitn.PmtInf.CdtTrfTxInf[0].PmtId.EndToEndId)
}

func TestBuildOptionalElements(t *testing.T) {
	noBIC := payment("NoBIC", "1.00")
	noBIC.BIC = ""
	noRef := payment("NoRef", "2.00")
	noRef.Reference = ""

	doc := testBuilder().Build([]types.ValidatedPayment{noBIC, noRef}, testDebtor())
	txs := doc.CstmrCdtTrfInitn.PmtInf.CdtTrfTxInf
	require.Len(t, txs, 2)

	assert.Nil(t, txs[0].CdtrAgt, "empty BIC must omit CdtrAgt")
	assert.NotNil(t, txs[0].RmtInf)
	assert.NotNil(t, txs[1].CdtrAgt)
	assert.Nil(t, txs[1].RmtInf, "empty reference must omit RmtInf")
}

func TestNewBuilderUsesWallClock(t *testing.T) {
	doc := NewBuilder().Build([]types.ValidatedPayment{payment("A", "1.00")}, testDebtor())
	assert.Contains(t, doc.CstmrCdtTrfInitn.GrpHdr.MsgId, "MSG20")
}
