// =============================================================================
// CSV to SEPA XML Converter - pain.001.001.03 Document Model
// =============================================================================
//
// The ISO 20022 Customer Credit Transfer Initiation message, modelled as
// nested structs with xml tags. Element order inside every container is
// fixed by the schema and reproduced here by struct field order - the
// receiving bank's validator rejects reordered elements, so field order in
// this file is load-bearing.
//
//   Document
//   └── CstmrCdtTrfInitn
//       ├── GrpHdr : MsgId, CreDtTm, NbOfTxs, CtrlSum, InitgPty/Nm
//       └── PmtInf : PmtInfId, PmtMtd, NbOfTxs, CtrlSum,
//                    PmtTpInf/SvcLvl/Cd, ReqdExctnDt,
//                    Dbtr, DbtrAcct, DbtrAgt, ChrgBr,
//                    CdtTrfTxInf[]
//
// =============================================================================

package sepa

import "encoding/xml"

// Namespace is the pain.001.001.03 XML namespace.
const Namespace = "urn:iso:std:iso:20022:tech:xsd:pain.001.001.03"

// Document is the root element of the message.
type Document struct {
	XMLName xml.Name `xml:"Document"`
	Xmlns   string   `xml:"xmlns,attr"`

	CstmrCdtTrfInitn CustomerCreditTransferInitiation `xml:"CstmrCdtTrfInitn"`
}

// CustomerCreditTransferInitiation holds one group header and one payment
// information block. Bulk messages with multiple PmtInf blocks are out of
// scope for this tool.
type CustomerCreditTransferInitiation struct {
	GrpHdr GroupHeader        `xml:"GrpHdr"`
	PmtInf PaymentInformation `xml:"PmtInf"`
}

// GroupHeader carries message-level identification and the control totals
// the receiving bank uses to detect truncation.
type GroupHeader struct {
	MsgId    string `xml:"MsgId"`
	CreDtTm  string `xml:"CreDtTm"`
	NbOfTxs  string `xml:"NbOfTxs"`
	CtrlSum  string `xml:"CtrlSum"`
	InitgPty Party  `xml:"InitgPty"`
}

// PaymentInformation is the debtor-side block: one per message, containing
// every credit transfer transaction.
type PaymentInformation struct {
	PmtInfId    string        `xml:"PmtInfId"`
	PmtMtd      string        `xml:"PmtMtd"`
	NbOfTxs     string        `xml:"NbOfTxs"`
	CtrlSum     string        `xml:"CtrlSum"`
	PmtTpInf    PaymentType   `xml:"PmtTpInf"`
	ReqdExctnDt string        `xml:"ReqdExctnDt"`
	Dbtr        Party         `xml:"Dbtr"`
	DbtrAcct    Account       `xml:"DbtrAcct"`
	DbtrAgt     Agent         `xml:"DbtrAgt"`
	ChrgBr      string        `xml:"ChrgBr"`
	CdtTrfTxInf []Transaction `xml:"CdtTrfTxInf"`
}

// PaymentType declares the SEPA service level.
type PaymentType struct {
	SvcLvl ServiceLevel `xml:"SvcLvl"`
}

// ServiceLevel wraps the service level code ("SEPA").
type ServiceLevel struct {
	Cd string `xml:"Cd"`
}

// Party is a named party (initiator, debtor, or creditor).
type Party struct {
	Nm string `xml:"Nm"`
}

// Account identifies an account by IBAN.
type Account struct {
	Id AccountId `xml:"Id"`
}

// AccountId wraps the IBAN element.
type AccountId struct {
	IBAN string `xml:"IBAN"`
}

// Agent identifies a financial institution by BIC.
type Agent struct {
	FinInstnId FinancialInstitution `xml:"FinInstnId"`
}

// FinancialInstitution wraps the BIC element.
type FinancialInstitution struct {
	BIC string `xml:"BIC"`
}

// Transaction is one credit transfer. CdtrAgt and RmtInf are pointers:
// they are omitted entirely when the source record had no BIC or no
// reference.
type Transaction struct {
	PmtId    PaymentId       `xml:"PmtId"`
	Amt      Amount          `xml:"Amt"`
	CdtrAgt  *Agent          `xml:"CdtrAgt,omitempty"`
	Cdtr     Party           `xml:"Cdtr"`
	CdtrAcct Account         `xml:"CdtrAcct"`
	RmtInf   *RemittanceInfo `xml:"RmtInf,omitempty"`
}

// PaymentId wraps the end-to-end identifier, which travels unchanged
// through the clearing chain back to the initiator.
type PaymentId struct {
	EndToEndId string `xml:"EndToEndId"`
}

// Amount wraps the instructed amount.
type Amount struct {
	InstdAmt InstructedAmount `xml:"InstdAmt"`
}

// InstructedAmount is a currency-qualified amount. The text is always
// formatted with exactly 2 decimal digits.
type InstructedAmount struct {
	Ccy   string `xml:"Ccy,attr"`
	Value string `xml:",chardata"`
}

// RemittanceInfo carries the unstructured payment reference.
type RemittanceInfo struct {
	Ustrd string `xml:"Ustrd"`
}
