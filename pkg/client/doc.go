/*
Package client implements a client for the SoroScan contract-indexing HTTP
API.

A Client is constructed once with an endpoint and optional credentials and is
then safe to share between goroutines:

	c, err := client.New("https://api.soroscan.io", client.Options{
		APIKey: os.Getenv("SOROSCAN_API_KEY"),
	})
	if err != nil {
		// The endpoint is invalid, nothing was sent over the network.
	}

Every method performs exactly one HTTP request and either returns a decoded
result or an error the caller can branch on:

  - *soroapi.Error — the server rejected the request (check StatusCode and
    Code, see soroapi.IsNotFound and friends);
  - *TimeoutError — the configured request timeout elapsed;
  - anything else — a failure below the HTTP layer, returned as produced by
    net/http.

List endpoints are cursor-paginated: pass cursors from the returned PageInfo
back via soroapi.Pagination to fetch adjacent pages. The client performs no
retries; PollTransaction is the one (opt-in) exception, repeatedly querying a
transaction until it reaches a terminal status.
*/
package client
