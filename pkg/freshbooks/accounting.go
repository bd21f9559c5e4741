package freshbooks

import (
	"time"
)

// Customer is a FreshBooks client: someone the business bills. The API calls
// these "clients"; the Go name avoids colliding with the API Client.
type Customer struct {
	ID                 int64     `json:"id"                  yaml:"id"`
	UserID             int64     `json:"userid"              yaml:"userid"`
	AccountingSystemID string    `json:"accounting_systemid" yaml:"accounting_systemid"`
	FirstName          string    `json:"fname"               yaml:"fname"`
	LastName           string    `json:"lname"               yaml:"lname"`
	Organization       string    `json:"organization"        yaml:"organization"`
	Email              string    `json:"email"               yaml:"email"`
	BusinessPhone      string    `json:"bus_phone"           yaml:"bus_phone"`
	MobilePhone        string    `json:"mob_phone"           yaml:"mob_phone"`
	Fax                string    `json:"fax"                 yaml:"fax"`
	Note               string    `json:"note"                yaml:"note"`
	Street             string    `json:"p_street"            yaml:"p_street"`
	Street2            string    `json:"p_street2"           yaml:"p_street2"`
	City               string    `json:"p_city"              yaml:"p_city"`
	Province           string    `json:"p_province"          yaml:"p_province"`
	PostalCode         string    `json:"p_code"              yaml:"p_code"`
	Country            string    `json:"p_country"           yaml:"p_country"`
	CurrencyCode       string    `json:"currency_code"       yaml:"currency_code"`
	Language           string    `json:"language"            yaml:"language"`
	VATName            string    `json:"vat_name"            yaml:"vat_name"`
	VATNumber          string    `json:"vat_number"          yaml:"vat_number"`
	AllowLateFees      bool      `json:"allow_late_fees"     yaml:"allow_late_fees"`
	VisState           VisState  `json:"vis_state"           yaml:"vis_state"`
	SignupDate         time.Time `json:"signup_date"         yaml:"signup_date"`
	Updated            time.Time `json:"updated"             yaml:"updated"`
}

// CustomerFields is the wire mapping for Customer.
var CustomerFields = FieldMap[Customer]{
	Int64Field("id", "ID", func(c *Customer) *int64 { return &c.ID }),
	Int64Field("userid", "UserID", func(c *Customer) *int64 { return &c.UserID }),
	StringField("accounting_systemid", "AccountingSystemID", func(c *Customer) *string { return &c.AccountingSystemID }),
	StringField("fname", "FirstName", func(c *Customer) *string { return &c.FirstName }),
	StringField("lname", "LastName", func(c *Customer) *string { return &c.LastName }),
	StringField("organization", "Organization", func(c *Customer) *string { return &c.Organization }),
	StringField("email", "Email", func(c *Customer) *string { return &c.Email }),
	StringField("bus_phone", "BusinessPhone", func(c *Customer) *string { return &c.BusinessPhone }),
	StringField("mob_phone", "MobilePhone", func(c *Customer) *string { return &c.MobilePhone }),
	StringField("fax", "Fax", func(c *Customer) *string { return &c.Fax }),
	StringField("note", "Note", func(c *Customer) *string { return &c.Note }),
	StringField("p_street", "Street", func(c *Customer) *string { return &c.Street }),
	StringField("p_street2", "Street2", func(c *Customer) *string { return &c.Street2 }),
	StringField("p_city", "City", func(c *Customer) *string { return &c.City }),
	StringField("p_province", "Province", func(c *Customer) *string { return &c.Province }),
	StringField("p_code", "PostalCode", func(c *Customer) *string { return &c.PostalCode }),
	StringField("p_country", "Country", func(c *Customer) *string { return &c.Country }),
	StringField("currency_code", "CurrencyCode", func(c *Customer) *string { return &c.CurrencyCode }),
	StringField("language", "Language", func(c *Customer) *string { return &c.Language }),
	StringField("vat_name", "VATName", func(c *Customer) *string { return &c.VATName }),
	StringField("vat_number", "VATNumber", func(c *Customer) *string { return &c.VATNumber }),
	BoolField("allow_late_fees", "AllowLateFees", func(c *Customer) *bool { return &c.AllowLateFees }),
	VisStateField("vis_state", "VisState", func(c *Customer) *VisState { return &c.VisState }),
	TimeField("signup_date", "SignupDate", func(c *Customer) *time.Time { return &c.SignupDate }),
	TimeField("updated", "Updated", func(c *Customer) *time.Time { return &c.Updated }),
}

// InvoiceLine is a line item, present when "lines" is included.
type InvoiceLine struct {
	LineID      int64  `json:"lineid"      yaml:"lineid"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Quantity    string `json:"qty"         yaml:"qty"`
	UnitCost    Money  `json:"unit_cost"   yaml:"unit_cost"`
	Amount      Money  `json:"amount"      yaml:"amount"`
	TaxName1    string `json:"taxName1"    yaml:"taxName1"`
	TaxAmount1  string `json:"taxAmount1"  yaml:"taxAmount1"`
}

// InvoiceLineFields is the wire mapping for InvoiceLine.
var InvoiceLineFields = FieldMap[InvoiceLine]{
	Int64Field("lineid", "LineID", func(l *InvoiceLine) *int64 { return &l.LineID }),
	StringField("name", "Name", func(l *InvoiceLine) *string { return &l.Name }),
	StringField("description", "Description", func(l *InvoiceLine) *string { return &l.Description }),
	StringField("qty", "Quantity", func(l *InvoiceLine) *string { return &l.Quantity }),
	MoneyField("unit_cost", "UnitCost", func(l *InvoiceLine) *Money { return &l.UnitCost }),
	MoneyField("amount", "Amount", func(l *InvoiceLine) *Money { return &l.Amount }),
	StringField("taxName1", "TaxName1", func(l *InvoiceLine) *string { return &l.TaxName1 }),
	StringField("taxAmount1", "TaxAmount1", func(l *InvoiceLine) *string { return &l.TaxAmount1 }),
}

// Invoice is a bill sent to a customer.
type Invoice struct {
	ID                 int64         `json:"id"                  yaml:"id"`
	InvoiceID          int64         `json:"invoiceid"           yaml:"invoiceid"`
	AccountingSystemID string        `json:"accounting_systemid" yaml:"accounting_systemid"`
	InvoiceNumber      string        `json:"invoice_number"      yaml:"invoice_number"`
	CustomerID         int64         `json:"customerid"          yaml:"customerid"`
	CreateDate         time.Time     `json:"create_date"         yaml:"create_date"`
	DueDate            time.Time     `json:"due_date"            yaml:"due_date"`
	Amount             Money         `json:"amount"              yaml:"amount"`
	Outstanding        Money         `json:"outstanding"         yaml:"outstanding"`
	Paid               Money         `json:"paid"                yaml:"paid"`
	CurrencyCode       string        `json:"currency_code"       yaml:"currency_code"`
	Status             int           `json:"status"              yaml:"status"`
	PaymentStatus      string        `json:"payment_status"      yaml:"payment_status"`
	DisplayStatus      string        `json:"display_status"      yaml:"display_status"`
	FirstName          string        `json:"fname"               yaml:"fname"`
	LastName           string        `json:"lname"               yaml:"lname"`
	Organization       string        `json:"organization"        yaml:"organization"`
	PONumber           string        `json:"po_number"           yaml:"po_number"`
	Notes              string        `json:"notes"               yaml:"notes"`
	Terms              string        `json:"terms"               yaml:"terms"`
	VisState           VisState      `json:"vis_state"           yaml:"vis_state"`
	CreatedAt          time.Time     `json:"created_at"          yaml:"created_at"`
	Updated            time.Time     `json:"updated"             yaml:"updated"`
	Lines              []InvoiceLine `json:"lines,omitempty"     yaml:"lines,omitempty"`
}

// InvoiceFields is the wire mapping for Invoice.
var InvoiceFields = FieldMap[Invoice]{
	Int64Field("id", "ID", func(i *Invoice) *int64 { return &i.ID }),
	Int64Field("invoiceid", "InvoiceID", func(i *Invoice) *int64 { return &i.InvoiceID }),
	StringField("accounting_systemid", "AccountingSystemID", func(i *Invoice) *string { return &i.AccountingSystemID }),
	StringField("invoice_number", "InvoiceNumber", func(i *Invoice) *string { return &i.InvoiceNumber }),
	Int64Field("customerid", "CustomerID", func(i *Invoice) *int64 { return &i.CustomerID }),
	DateField("create_date", "CreateDate", func(i *Invoice) *time.Time { return &i.CreateDate }),
	DateField("due_date", "DueDate", func(i *Invoice) *time.Time { return &i.DueDate }),
	MoneyField("amount", "Amount", func(i *Invoice) *Money { return &i.Amount }),
	MoneyField("outstanding", "Outstanding", func(i *Invoice) *Money { return &i.Outstanding }),
	MoneyField("paid", "Paid", func(i *Invoice) *Money { return &i.Paid }),
	StringField("currency_code", "CurrencyCode", func(i *Invoice) *string { return &i.CurrencyCode }),
	IntField("status", "Status", func(i *Invoice) *int { return &i.Status }),
	StringField("payment_status", "PaymentStatus", func(i *Invoice) *string { return &i.PaymentStatus }),
	StringField("display_status", "DisplayStatus", func(i *Invoice) *string { return &i.DisplayStatus }),
	StringField("fname", "FirstName", func(i *Invoice) *string { return &i.FirstName }),
	StringField("lname", "LastName", func(i *Invoice) *string { return &i.LastName }),
	StringField("organization", "Organization", func(i *Invoice) *string { return &i.Organization }),
	StringField("po_number", "PONumber", func(i *Invoice) *string { return &i.PONumber }),
	StringField("notes", "Notes", func(i *Invoice) *string { return &i.Notes }),
	StringField("terms", "Terms", func(i *Invoice) *string { return &i.Terms }),
	VisStateField("vis_state", "VisState", func(i *Invoice) *VisState { return &i.VisState }),
	TimeField("created_at", "CreatedAt", func(i *Invoice) *time.Time { return &i.CreatedAt }),
	TimeField("updated", "Updated", func(i *Invoice) *time.Time { return &i.Updated }),
	ListField("lines", "Lines", InvoiceLineFields, func(i *Invoice) *[]InvoiceLine { return &i.Lines }),
}

// Payment is money received against an invoice.
type Payment struct {
	ID            int64     `json:"id"            yaml:"id"`
	LogID         int64     `json:"logid"         yaml:"logid"`
	InvoiceID     int64     `json:"invoiceid"     yaml:"invoiceid"`
	ClientID      int64     `json:"clientid"      yaml:"clientid"`
	Amount        Money     `json:"amount"        yaml:"amount"`
	Date          time.Time `json:"date"          yaml:"date"`
	Type          string    `json:"type"          yaml:"type"`
	Note          string    `json:"note"          yaml:"note"`
	TransactionID string    `json:"transactionid" yaml:"transactionid"`
	Gateway       string    `json:"gateway"       yaml:"gateway"`
	FromCredit    bool      `json:"from_credit"   yaml:"from_credit"`
	VisState      VisState  `json:"vis_state"     yaml:"vis_state"`
	Updated       time.Time `json:"updated"       yaml:"updated"`
}

// PaymentFields is the wire mapping for Payment.
var PaymentFields = FieldMap[Payment]{
	Int64Field("id", "ID", func(p *Payment) *int64 { return &p.ID }),
	Int64Field("logid", "LogID", func(p *Payment) *int64 { return &p.LogID }),
	Int64Field("invoiceid", "InvoiceID", func(p *Payment) *int64 { return &p.InvoiceID }),
	Int64Field("clientid", "ClientID", func(p *Payment) *int64 { return &p.ClientID }),
	MoneyField("amount", "Amount", func(p *Payment) *Money { return &p.Amount }),
	DateField("date", "Date", func(p *Payment) *time.Time { return &p.Date }),
	StringField("type", "Type", func(p *Payment) *string { return &p.Type }),
	StringField("note", "Note", func(p *Payment) *string { return &p.Note }),
	StringField("transactionid", "TransactionID", func(p *Payment) *string { return &p.TransactionID }),
	StringField("gateway", "Gateway", func(p *Payment) *string { return &p.Gateway }),
	BoolField("from_credit", "FromCredit", func(p *Payment) *bool { return &p.FromCredit }),
	VisStateField("vis_state", "VisState", func(p *Payment) *VisState { return &p.VisState }),
	TimeField("updated", "Updated", func(p *Payment) *time.Time { return &p.Updated }),
}

// Tax is a named tax rate.
type Tax struct {
	ID                 int64     `json:"id"                  yaml:"id"`
	TaxID              int64     `json:"taxid"               yaml:"taxid"`
	AccountingSystemID string    `json:"accounting_systemid" yaml:"accounting_systemid"`
	Name               string    `json:"name"                yaml:"name"`
	Amount             string    `json:"amount"              yaml:"amount"`
	Number             string    `json:"number"              yaml:"number"`
	Compound           bool      `json:"compound"            yaml:"compound"`
	Updated            time.Time `json:"updated"             yaml:"updated"`
}

// TaxFields is the wire mapping for Tax.
var TaxFields = FieldMap[Tax]{
	Int64Field("id", "ID", func(t *Tax) *int64 { return &t.ID }),
	Int64Field("taxid", "TaxID", func(t *Tax) *int64 { return &t.TaxID }),
	StringField("accounting_systemid", "AccountingSystemID", func(t *Tax) *string { return &t.AccountingSystemID }),
	StringField("name", "Name", func(t *Tax) *string { return &t.Name }),
	StringField("amount", "Amount", func(t *Tax) *string { return &t.Amount }),
	StringField("number", "Number", func(t *Tax) *string { return &t.Number }),
	BoolField("compound", "Compound", func(t *Tax) *bool { return &t.Compound }),
	TimeField("updated", "Updated", func(t *Tax) *time.Time { return &t.Updated }),
}
