// Package freshbooks provides types, interfaces, and helpers for working with
// the FreshBooks accounting API.
//
// # Overview
//
// The freshbooks package defines the entity types (Customer, Invoice, Payment,
// Tax, TeamMember, Identity), the generic ResourceClient interface and the
// query builders used to shape list requests. A concrete implementation is
// provided by the fbclient package, which wires configuration, transport and
// OAuth2. Most consumers import fbclient to construct a client and then use
// the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/freshbooks/pkg/fbclient"
//	  "github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := fbclient.NewWithToken("", "access-token")
//	  if err != nil { log.Fatal(err) }
//
//	  clients, err := cli.Clients().List(ctx, "xZNQ1X", freshbooks.NewPaginateBuilder(1, 50))
//	  if err != nil { log.Fatal(err) }
//	  _ = clients
//	}
//
// # Queries and pagination
//
// Builders render to query parameters and compose freely:
//
//	filter := freshbooks.NewFilterBuilder().Like("organization", "acme").Boolean("allow_late_fees", true)
//	page, err := cli.Invoices().List(ctx, accountID,
//	  freshbooks.NewPaginateBuilder(2, 25),
//	  freshbooks.NewSortBuilder("create_date").Descending("create_date"),
//	  filter)
//
// When the server omits the page count it is derived as total/per_page+1 using
// integer division, so an exact multiple reports one trailing empty page.
// PaginationIterator walks all pages:
//
//	it := freshbooks.NewPaginationIterator[freshbooks.Customer](ctx, cli.Clients(), accountID)
//	all, err := it.All()
//
// # Errors
//
// Every failure wraps one of ErrTransport, ErrMalformedResponse,
// ErrUnexpectedResponseShape, ErrUnknownAPI, ErrAPI or ErrConfiguration.
// API level failures are *APIError values carrying the HTTP status, the raw
// body and, when present, the server errno. Helpers such as IsNotFound and
// IsUnauthorized branch on common cases.
//
// # Field mapping
//
// Entities are decoded through static FieldMap tables: an ordered list of wire
// key, Go field and coercion. No reflection is involved, and unknown keys are
// ignored.
package freshbooks
