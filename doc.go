// Package steamgriddb is a Go client for the SteamGridDB HTTP API, a
// community catalog of game artwork: grids, hero banners, logos and icons.
//
// The client is a thin translation layer. Each method validates its
// arguments, performs exactly one HTTP request, and decodes the catalog's
// response envelope. There are no retries, no caching and no background
// work; callers own their concurrency and the client is safe to share
// across goroutines.
//
// # Basic Usage
//
//	client, err := steamgriddb.New("your-api-key")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	results, err := client.SearchGames(ctx, "Half Life 2")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	grids, err := client.GetGridsByGameID(ctx, results[0].ID, "static", "material")
//
// # Configuration
//
// Construct from a Config for full control, or from the environment:
//
//	client, err := steamgriddb.NewWithConfig(steamgriddb.Config{
//		APIKey:  os.Getenv("MY_KEY"),
//		Timeout: 10 * time.Second,
//	})
//
//	client, err := steamgriddb.NewFromEnv() // reads STEAMGRIDDB_* variables
//
// Functional options cover the remaining knobs, for example WithBaseURL
// to point at a mock catalog in tests, or WithHTTPClient to bring a
// custom transport.
//
// # Errors
//
// Every failed call returns an error classified into one of four kinds:
// invalid argument (caught before any network I/O), malformed response,
// api error (the catalog said success=false), and transport error.
// Use the predicates to branch:
//
//	if steamgriddb.IsAPIError(err) { ... }
//
// The catalog's envelope governs over the HTTP status code: a 200 with
// success=false is an api error, and a 500 carrying success=true is a
// success.
//
// # Authentication
//
// Most endpoints require an API key, sent as a bearer token. A client
// without a key still works for experimentation; the catalog rejects the
// calls that need auth.
package steamgriddb
