package commands

import (
	"strconv"

	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
	"github.com/spf13/cobra"
)

func formatID(id int64) string {
	if id == 0 {
		return ""
	}

	return strconv.FormatInt(id, 10)
}

// NewClientsCommand creates the clients command group.
func NewClientsCommand() *cobra.Command {
	resource := &resourceCommand[freshbooks.Customer]{
		use:      "clients",
		aliases:  []string{"client", "customers"},
		singular: "client",
		plural:   "clients",
		scopeID:  accountID,
		accessor: func(c freshbooks.Client) freshbooks.ResourceClient[freshbooks.Customer] { return c.Clients() },
		headers:  []string{"ID", "Organization", "Name", "Email", "Currency", "State", "Updated"},
		row: func(c freshbooks.Customer) []string {
			return []string{
				formatID(c.ID),
				c.Organization,
				fullName(c.FirstName, c.LastName),
				c.Email,
				c.CurrencyCode,
				titleCase(c.VisState.String()),
				formatTimestamp(c.Updated),
			}
		},
	}

	return resource.command()
}

// NewInvoicesCommand creates the invoices command group.
func NewInvoicesCommand() *cobra.Command {
	resource := &resourceCommand[freshbooks.Invoice]{
		use:      "invoices",
		aliases:  []string{"invoice", "inv"},
		singular: "invoice",
		plural:   "invoices",
		scopeID:  accountID,
		accessor: func(c freshbooks.Client) freshbooks.ResourceClient[freshbooks.Invoice] { return c.Invoices() },
		headers:  []string{"ID", "Number", "Client ID", "Organization", "Amount", "Outstanding", "Status", "Created", "Due"},
		row: func(i freshbooks.Invoice) []string {
			return []string{
				formatID(i.ID),
				i.InvoiceNumber,
				formatID(i.CustomerID),
				i.Organization,
				i.Amount.String(),
				i.Outstanding.String(),
				titleCase(i.DisplayStatus),
				formatDate(i.CreateDate),
				formatDate(i.DueDate),
			}
		},
	}

	return resource.command()
}

// NewPaymentsCommand creates the payments command group.
func NewPaymentsCommand() *cobra.Command {
	resource := &resourceCommand[freshbooks.Payment]{
		use:      "payments",
		aliases:  []string{"payment"},
		singular: "payment",
		plural:   "payments",
		scopeID:  accountID,
		accessor: func(c freshbooks.Client) freshbooks.ResourceClient[freshbooks.Payment] { return c.Payments() },
		headers:  []string{"ID", "Invoice ID", "Client ID", "Amount", "Type", "Date", "State"},
		row: func(p freshbooks.Payment) []string {
			return []string{
				formatID(p.ID),
				formatID(p.InvoiceID),
				formatID(p.ClientID),
				p.Amount.String(),
				p.Type,
				formatDate(p.Date),
				titleCase(p.VisState.String()),
			}
		},
	}

	return resource.command()
}

// NewTaxesCommand creates the taxes command group.
func NewTaxesCommand() *cobra.Command {
	resource := &resourceCommand[freshbooks.Tax]{
		use:      "taxes",
		aliases:  []string{"tax"},
		singular: "tax",
		plural:   "taxes",
		scopeID:  accountID,
		accessor: func(c freshbooks.Client) freshbooks.ResourceClient[freshbooks.Tax] { return c.Taxes() },
		headers:  []string{"ID", "Name", "Amount", "Number", "Compound", "Updated"},
		row: func(t freshbooks.Tax) []string {
			return []string{
				formatID(t.ID),
				t.Name,
				t.Amount,
				t.Number,
				formatBool(t.Compound),
				formatTimestamp(t.Updated),
			}
		},
	}

	return resource.command()
}
