// Package fbclient provides the primary entry point for constructing a
// FreshBooks API client that implements the freshbooks.Client interface.
//
// It layers configuration defaults, HTTP transport and OAuth2 on top of the
// resource interfaces and types defined in the freshbooks package.
//
// Quick start
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
//
//	  // With an access token you already have:
//	  cli, err := fbclient.NewWithToken("", "eyJhbGciOi...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an application and a stored refresh token:
//	  cli, err = fbclient.New(&freshbooks.Config{
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	    RefreshToken: "refresh-token",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  me, err := cli.CurrentUser(ctx)
//	  if err != nil { log.Fatal(err) }
//
//	  accountID := me.BusinessMemberships[0].Business.AccountID
//	  invoices, err := cli.Invoices().List(ctx, accountID, freshbooks.NewPaginateBuilder(1, 25))
//	  if err != nil { log.Fatal(err) }
//	  _ = invoices
//	}
//
// # Authorization code flow
//
// NewWithApplication builds a client with no token. Send the user to
// AuthorizationURL, then pass the code FreshBooks redirects back with to
// ExchangeCode. The returned token is used for subsequent calls.
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken,
// NewWithRefreshToken and NewWithApplication.
package fbclient
