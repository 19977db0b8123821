package docstore_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasferme/worker_housing_app/internal/platform/docstore"
)

// fakeClient serves canned documents and hand-fed change notifications.
type fakeClient struct {
	mu      sync.Mutex
	docs    map[string][]docstore.Document
	listErr error
	changes chan struct{}
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		docs:    map[string][]docstore.Document{},
		changes: make(chan struct{}, 4),
	}
}

func (c *fakeClient) setDocs(collection string, docs []docstore.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[collection] = docs
}

func (c *fakeClient) List(ctx context.Context, collection string, filter docstore.Filter) ([]docstore.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.docs[collection], nil
}

func (c *fakeClient) Get(ctx context.Context, collection, id string) (*docstore.Document, error) {
	return nil, errors.New("not implemented")
}

func (c *fakeClient) Create(ctx context.Context, collection, id string, data any) (*docstore.Document, error) {
	return nil, errors.New("not implemented")
}

func (c *fakeClient) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	return errors.New("not implemented")
}

func (c *fakeClient) Delete(ctx context.Context, collection, id string) error {
	return errors.New("not implemented")
}

func (c *fakeClient) Subscribe(ctx context.Context, collection string) (<-chan struct{}, error) {
	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-c.changes:
				if !ok {
					return
				}
				out <- struct{}{}
			}
		}
	}()
	return out, nil
}

type testItem struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

func decodeTestItem(doc docstore.Document) (testItem, error) {
	var item testItem
	if err := json.Unmarshal(doc.Data, &item); err != nil {
		return testItem{}, err
	}
	item.ID = doc.ID
	return item, nil
}

func doc(id string, payload string) docstore.Document {
	return docstore.Document{ID: id, Data: json.RawMessage(payload)}
}

func waitForItems(t *testing.T, accessor *docstore.Accessor[testItem], want int) []testItem {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		items, status, err := accessor.Snapshot()
		if status == docstore.StatusReady && err == nil && len(items) == want {
			return items
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("snapshot never reached %d items", want)
	return nil
}

func TestAccessorInitialLoad(t *testing.T) {
	client := newFakeClient()
	client.setDocs("items", []docstore.Document{
		doc("a", `{"value":1}`),
		doc("b", `{"value":2}`),
	})

	accessor := docstore.NewAccessor(client, "items", decodeTestItem)
	require.NoError(t, accessor.Start(context.Background()))
	defer accessor.Stop()

	items, status, err := accessor.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, docstore.StatusReady, status)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, 2, items[1].Value)
}

func TestAccessorReloadsOnNotification(t *testing.T) {
	client := newFakeClient()
	client.setDocs("items", []docstore.Document{doc("a", `{"value":1}`)})

	accessor := docstore.NewAccessor(client, "items", decodeTestItem)
	require.NoError(t, accessor.Start(context.Background()))
	defer accessor.Stop()

	client.setDocs("items", []docstore.Document{
		doc("a", `{"value":1}`),
		doc("b", `{"value":2}`),
	})
	client.changes <- struct{}{}

	items := waitForItems(t, accessor, 2)
	assert.Equal(t, "b", items[1].ID)
}

func TestAccessorDecodeFailureFailsWholeSnapshot(t *testing.T) {
	client := newFakeClient()
	client.setDocs("items", []docstore.Document{
		doc("a", `{"value":1}`),
		doc("b", `not json`),
	})

	accessor := docstore.NewAccessor(client, "items", decodeTestItem)
	err := accessor.Start(context.Background())
	defer accessor.Stop()

	require.Error(t, err)
	items, status, snapErr := accessor.Snapshot()
	assert.Equal(t, docstore.StatusError, status)
	assert.Error(t, snapErr)
	// No partial view: the good document is withheld too.
	assert.Empty(t, items)
}

func TestAccessorListFailureSetsError(t *testing.T) {
	client := newFakeClient()
	client.listErr = errors.New("connection lost")

	accessor := docstore.NewAccessor(client, "items", decodeTestItem)
	err := accessor.Start(context.Background())
	defer accessor.Stop()

	require.Error(t, err)
	_, status, snapErr := accessor.Snapshot()
	assert.Equal(t, docstore.StatusError, status)
	assert.EqualError(t, snapErr, "connection lost")
}

func TestAccessorRefresh(t *testing.T) {
	client := newFakeClient()
	client.setDocs("items", []docstore.Document{doc("a", `{"value":1}`)})

	accessor := docstore.NewAccessor(client, "items", decodeTestItem)
	require.NoError(t, accessor.Start(context.Background()))
	defer accessor.Stop()

	client.setDocs("items", []docstore.Document{
		doc("a", `{"value":5}`),
	})
	require.NoError(t, accessor.Refresh(context.Background()))

	items, status, err := accessor.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, docstore.StatusReady, status)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Value)
}
