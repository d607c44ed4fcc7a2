// =============================================================================
// CSV to SEPA XML Converter - Document Builder
// =============================================================================
//
// Builds the pain.001.001.03 document tree from a set of validated
// payments and a debtor profile. The builder trusts its input completely:
// ValidatedPayment values can only come out of row validation, so no field
// is re-checked here.
//
// All timestamp-derived identifiers come from the injected clock, read
// once per build. Given the same payments and the same clock reading, the
// built document is identical - determinism the serializer then preserves
// byte for byte.
//
// IDENTIFIER FORMATS:
//   MsgId      = "MSG" + YYYYMMDDHHMMSS
//   PmtInfId   = "PMT" + YYYYMMDDHHMMSS
//   EndToEndId = "E2E" + YYYYMMDD + 4-digit 1-based index
//
// The index restarts at 1 on every build, so identifiers are unique within
// a document but not across documents generated in the same second.
// Callers needing global uniqueness must assign their own ids upstream.
//
// =============================================================================

package sepa

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ginjaninja78/csv-to-sepa-xml/internal/config"
	"github.com/ginjaninja78/csv-to-sepa-xml/internal/types"
)

// Fixed message constants for single SEPA credit transfer initiation.
const (
	paymentMethod = "TRF"  // credit transfer
	serviceLevel  = "SEPA" // SEPA scheme service level
	chargeBearer  = "SLEV" // charges follow the service level
	currency      = "EUR"
)

// Builder constructs pain.001 documents.
type Builder struct {
	// Clock supplies the timestamp used for CreDtTm, ReqdExctnDt, and
	// every generated identifier. Defaults to time.Now.
	Clock func() time.Time
}

// NewBuilder returns a Builder using the wall clock.
func NewBuilder() *Builder {
	return &Builder{Clock: time.Now}
}

// Build assembles the document for the given valid payments and debtor.
//
// PRECONDITION: payments have passed row validation. The builder performs
// no validation of its own and will propagate whatever it is handed; the
// ValidatedPayment type makes violating this a deliberate act.
func (b *Builder) Build(payments []types.ValidatedPayment, debtor config.DebtorProfile) *Document {
	now := b.clock()

	stamp := now.Format("20060102150405")
	dateStamp := now.Format("20060102")

	total := totalAmount(payments)
	count := strconv.Itoa(len(payments))

	doc := &Document{
		Xmlns: Namespace,
		CstmrCdtTrfInitn: CustomerCreditTransferInitiation{
			GrpHdr: GroupHeader{
				MsgId:    "MSG" + stamp,
				CreDtTm:  now.Format("2006-01-02T15:04:05"),
				NbOfTxs:  count,
				CtrlSum:  total,
				InitgPty: Party{Nm: debtor.Name},
			},
			PmtInf: PaymentInformation{
				PmtInfId:    "PMT" + stamp,
				PmtMtd:      paymentMethod,
				NbOfTxs:     count,
				CtrlSum:     total,
				PmtTpInf:    PaymentType{SvcLvl: ServiceLevel{Cd: serviceLevel}},
				ReqdExctnDt: now.Format("2006-01-02"),
				Dbtr:        Party{Nm: debtor.Name},
				DbtrAcct:    Account{Id: AccountId{IBAN: debtor.IBAN}},
				DbtrAgt:     Agent{FinInstnId: FinancialInstitution{BIC: debtor.BIC}},
				ChrgBr:      chargeBearer,
			},
		},
	}

	transactions := make([]Transaction, 0, len(payments))
	for i, payment := range payments {
		transactions = append(transactions, buildTransaction(payment, dateStamp, i+1))
	}
	doc.CstmrCdtTrfInitn.PmtInf.CdtTrfTxInf = transactions

	return doc
}

// buildTransaction maps one validated payment to a CdtTrfTxInf element.
// index is 1-based and follows input order.
func buildTransaction(payment types.ValidatedPayment, dateStamp string, index int) Transaction {
	tx := Transaction{
		PmtId: PaymentId{
			EndToEndId: fmt.Sprintf("E2E%s%04d", dateStamp, index),
		},
		Amt: Amount{
			InstdAmt: InstructedAmount{
				Ccy:   currency,
				Value: payment.Amount.StringFixed(2),
			},
		},
		Cdtr:     Party{Nm: payment.Name},
		CdtrAcct: Account{Id: AccountId{IBAN: payment.IBAN}},
	}

	if payment.BIC != "" {
		tx.CdtrAgt = &Agent{FinInstnId: FinancialInstitution{BIC: payment.BIC}}
	}

	if payment.Reference != "" {
		tx.RmtInf = &RemittanceInfo{Ustrd: payment.Reference}
	}

	return tx
}

// totalAmount computes the exact decimal control sum, formatted with
// exactly 2 decimal digits.
func totalAmount(payments []types.ValidatedPayment) string {
	batch := types.PaymentBatch{Valid: payments}
	return batch.TotalAmount().StringFixed(2)
}

func (b *Builder) clock() time.Time {
	if b.Clock == nil {
		return time.Now()
	}
	return b.Clock()
}
