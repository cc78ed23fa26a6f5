package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soroscan/soroscan-go/pkg/soroapi"
)

const eventsPage = `{
	"items": [
		{"id": "11", "contractId": "CAAA", "txHash": "f00d", "ledger": 100, "eventType": "transfer", "topics": ["from", "to"], "data": {"amount": "100"}, "ledgerClosedAt": "2026-08-01T10:00:00Z"},
		{"id": "12", "contractId": "CAAA", "txHash": "f00e", "ledger": 101, "eventType": "mint", "topics": ["to"], "data": null, "ledgerClosedAt": "2026-08-01T10:00:05Z"},
		{"id": "13", "contractId": "CBBB", "txHash": "f00f", "ledger": 101, "eventType": "burn", "topics": [], "data": null, "ledgerClosedAt": "2026-08-01T10:00:05Z"}
	],
	"pageInfo": {"hasNextPage": true, "hasPreviousPage": false, "startCursor": "c11", "endCursor": "c13"},
	"totalCount": 42
}`

func TestGetEvents(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/events", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(eventsPage))
	}))
	defer srv.Close()

	c, err := New(srv.URL, Options{})
	require.NoError(t, err)

	page, err := c.GetEvents(context.Background(), soroapi.EventFilter{
		ContractID:  "CAAA",
		StartLedger: 100,
		Pagination:  soroapi.Pagination{First: 3, After: "c10"},
	})
	require.NoError(t, err)

	// The emitted query contains present fields only, each exactly once.
	require.Equal(t, url.Values{
		"contractId":  {"CAAA"},
		"startLedger": {"100"},
		"first":       {"3"},
		"after":       {"c10"},
	}, gotQuery)

	// The page is returned exactly as served: order, page info and count.
	require.Len(t, page.Items, 3)
	assert.Equal(t, "11", page.Items[0].ID)
	assert.Equal(t, "12", page.Items[1].ID)
	assert.Equal(t, "13", page.Items[2].ID)
	assert.Equal(t, "transfer", page.Items[0].EventType)
	assert.Equal(t, uint32(101), page.Items[2].Ledger)
	assert.JSONEq(t, `{"amount": "100"}`, string(page.Items[0].Data))

	assert.True(t, page.PageInfo.HasNextPage)
	assert.False(t, page.PageInfo.HasPreviousPage)
	require.NotNil(t, page.PageInfo.StartCursor)
	assert.Equal(t, "c11", *page.PageInfo.StartCursor)
	require.NotNil(t, page.PageInfo.EndCursor)
	assert.Equal(t, "c13", *page.PageInfo.EndCursor)
	assert.Equal(t, 42, page.TotalCount)
}

func TestGetContracts(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/contracts", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [{"id": "CAAA", "name": "USDC", "type": "token", "creator": "GAAA", "verified": true, "eventCount": 7, "txCount": 5, "createdAt": "2026-07-01T00:00:00Z"}],
			"pageInfo": {"hasNextPage": false, "hasPreviousPage": false, "startCursor": null, "endCursor": null},
			"totalCount": 1
		}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, Options{})
	require.NoError(t, err)

	verified := false
	page, err := c.GetContracts(context.Background(), soroapi.ContractFilter{
		Type:     "token",
		Verified: &verified,
	})
	require.NoError(t, err)

	// A false *bool is a present filter, unlike an absent one.
	require.Equal(t, url.Values{
		"type":     {"token"},
		"verified": {"false"},
	}, gotQuery)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "USDC", page.Items[0].Name)
	assert.True(t, page.Items[0].Verified)
	assert.Equal(t, 1, page.TotalCount)
	assert.Nil(t, page.PageInfo.StartCursor)
}

func TestGetLedger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A numeric identifier is interpolated as decimal text.
		require.Equal(t, "/v1/ledgers/123456", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sequence": 123456, "hash": "abcd", "prevHash": "abcc", "txCount": 10, "eventCount": 3, "closedAt": "2026-08-01T10:00:00Z"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, Options{})
	require.NoError(t, err)

	ledger, err := c.GetLedger(context.Background(), 123456)
	require.NoError(t, err)
	assert.Equal(t, uint32(123456), ledger.Sequence)
	assert.Equal(t, 10, ledger.TxCount)
}
