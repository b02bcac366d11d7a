package docstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type item struct {
	ID       string `json:"_id,omitempty"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type line struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type order struct {
	ID    string `json:"_id,omitempty"`
	Lines []line `json:"itensSold"`
}

// storeContract is run against every backend available to the test binary.
type storeContract struct {
	suite.Suite
	newStore func(t *testing.T) Store
	store    Store
	ctx      context.Context
}

func (s *storeContract) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore(s.T())
}

func (s *storeContract) TearDownTest() {
	s.NoError(s.store.Close(s.ctx))
}

func (s *storeContract) insert(name string, qty int) string {
	id, err := s.store.Insert(s.ctx, "products", item{Name: name, Quantity: qty})
	s.Require().NoError(err)
	s.Require().True(ValidID(id))
	return id
}

func (s *storeContract) TestInsertAndFindByID() {
	id := s.insert("Martelo de Thor", 10)

	var got item
	found, err := s.store.FindByID(s.ctx, "products", id, &got)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(item{ID: id, Name: "Martelo de Thor", Quantity: 10}, got)
}

func (s *storeContract) TestInsertIgnoresCallerID() {
	id, err := s.store.Insert(s.ctx, "products", item{ID: "caller-chosen", Name: "Escudo", Quantity: 1})
	s.Require().NoError(err)
	s.NotEqual("caller-chosen", id)
}

func (s *storeContract) TestUnknownAndMalformedIDs() {
	var got item
	for _, id := range []string{NewID(), "not-an-id", ""} {
		found, err := s.store.FindByID(s.ctx, "products", id, &got)
		s.NoError(err)
		s.False(found, id)

		found, err = s.store.UpdateByID(s.ctx, "products", id, map[string]any{"quantity": 3})
		s.NoError(err)
		s.False(found, id)

		found, err = s.store.DeleteByID(s.ctx, "products", id)
		s.NoError(err)
		s.False(found, id)

		_, err = s.store.Increment(s.ctx, "products", id, "quantity", 1)
		s.ErrorIs(err, ErrNotFound, id)
	}
}

func (s *storeContract) TestFindOneByField() {
	s.insert("Traje de encolhimento", 20)
	want := s.insert("Escudo do Capitão América", 30)

	var got item
	found, err := s.store.FindOne(s.ctx, "products", "name", "Escudo do Capitão América", &got)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(want, got.ID)

	found, err = s.store.FindOne(s.ctx, "products", "name", "missing", &got)
	s.NoError(err)
	s.False(found)
}

func (s *storeContract) TestFindAllInCreationOrder() {
	var empty []item
	s.Require().NoError(s.store.FindAll(s.ctx, "products", &empty))
	s.Empty(empty)

	first := s.insert("Produto A", 1)
	second := s.insert("Produto B", 2)
	third := s.insert("Produto C", 3)

	var all []item
	s.Require().NoError(s.store.FindAll(s.ctx, "products", &all))
	s.Require().Len(all, 3)
	s.Equal([]string{first, second, third}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func (s *storeContract) TestUpdateByIDMergesFields() {
	id := s.insert("Produto original", 5)

	found, err := s.store.UpdateByID(s.ctx, "products", id, map[string]any{"name": "Produto renomeado", IDField: "ignored"})
	s.Require().NoError(err)
	s.True(found)

	var got item
	_, err = s.store.FindByID(s.ctx, "products", id, &got)
	s.Require().NoError(err)
	s.Equal(item{ID: id, Name: "Produto renomeado", Quantity: 5}, got)
}

func (s *storeContract) TestUpdateNestedList() {
	id, err := s.store.Insert(s.ctx, "sales", order{Lines: []line{{ProductID: "p1", Quantity: 1}}})
	s.Require().NoError(err)

	found, err := s.store.UpdateByID(s.ctx, "sales", id, map[string]any{
		"itensSold": []line{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 3}},
	})
	s.Require().NoError(err)
	s.True(found)

	var got order
	_, err = s.store.FindByID(s.ctx, "sales", id, &got)
	s.Require().NoError(err)
	s.Equal([]line{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 3}}, got.Lines)
}

func (s *storeContract) TestDeleteByID() {
	id := s.insert("Produto descartável", 5)

	found, err := s.store.DeleteByID(s.ctx, "products", id)
	s.Require().NoError(err)
	s.True(found)

	found, err = s.store.DeleteByID(s.ctx, "products", id)
	s.Require().NoError(err)
	s.False(found)

	var all []item
	s.Require().NoError(s.store.FindAll(s.ctx, "products", &all))
	s.Empty(all)
}

func (s *storeContract) TestIncrementFloorsAtZero() {
	id := s.insert("Produto contável", 5)

	v, err := s.store.Increment(s.ctx, "products", id, "quantity", -5)
	s.Require().NoError(err)
	s.Equal(0, v)

	_, err = s.store.Increment(s.ctx, "products", id, "quantity", -1)
	s.ErrorIs(err, ErrBelowZero)

	v, err = s.store.Increment(s.ctx, "products", id, "quantity", 7)
	s.Require().NoError(err)
	s.Equal(7, v)

	var got item
	_, err = s.store.FindByID(s.ctx, "products", id, &got)
	s.Require().NoError(err)
	s.Equal(7, got.Quantity)
}

func (s *storeContract) TestConcurrentDecrementsNeverGoNegative() {
	id := s.insert("Produto disputado", 10)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.store.Increment(s.ctx, "products", id, "quantity", -1); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(10, succeeded)
	var got item
	_, err := s.store.FindByID(s.ctx, "products", id, &got)
	s.Require().NoError(err)
	s.Equal(0, got.Quantity)
}

func (s *storeContract) TestPing() {
	s.NoError(s.store.Ping(s.ctx))
}

func TestMemoryStoreContract(t *testing.T) {
	suite.Run(t, &storeContract{newStore: func(*testing.T) Store { return NewMemoryStore() }})
}

func TestFileStoreContract(t *testing.T) {
	suite.Run(t, &storeContract{newStore: func(t *testing.T) Store {
		store, err := NewFileStore(t.TempDir() + "/data.json")
		require.NoError(t, err)
		return store
	}})
}

func TestInstrumentedStoreContract(t *testing.T) {
	suite.Run(t, &storeContract{newStore: func(*testing.T) Store {
		return Instrument(NewMemoryStore(), "memory", discardLogger())
	}})
}
