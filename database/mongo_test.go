package database

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func testOptions() Options {
	return Options{
		URI:                    "mongodb://127.0.0.1:27017",
		Name:                   "tutorlux_test",
		ServerSelectionTimeout: time.Second,
		ConnectTimeout:         time.Second,
		MinPoolSize:            0,
		MaxPoolSize:            2,
	}
}

func TestMongo_MissingSettings(t *testing.T) {
	_, err := NewMongo(Options{Name: "x"}).Database(context.Background())
	assert.ErrorContains(t, err, "MONGODB_URI")

	_, err = NewMongo(Options{URI: "mongodb://localhost"}).Database(context.Background())
	assert.ErrorContains(t, err, "MONGODB_DB")
}

func TestMongo_RetriesAfterFailedConnect(t *testing.T) {
	m := NewMongo(testOptions())

	var calls int32
	m.connect = func(ctx context.Context, opts ...*options.ClientOptions) (*mongo.Client, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, errors.New("dial failed")
		}
		return mongo.Connect(ctx, opts...)
	}
	t.Cleanup(func() { _ = m.Close(context.Background()) })

	_, err := m.Database(context.Background())
	require.Error(t, err)

	db, err := m.Database(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tutorlux_test", db.Name())
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestMongo_ConcurrentFirstUseConnectsOnce(t *testing.T) {
	m := NewMongo(testOptions())

	var calls int32
	m.connect = func(ctx context.Context, opts ...*options.ClientOptions) (*mongo.Client, error) {
		atomic.AddInt32(&calls, 1)
		return mongo.Connect(ctx, opts...)
	}
	t.Cleanup(func() { _ = m.Close(context.Background()) })

	var wg sync.WaitGroup
	dbs := make([]*mongo.Database, 8)
	for i := range dbs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			db, err := m.Database(context.Background())
			assert.NoError(t, err)
			dbs[i] = db
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	for _, db := range dbs {
		assert.Same(t, dbs[0], db)
	}
}

func TestMongo_CloseWithoutClient(t *testing.T) {
	assert.NoError(t, NewMongo(testOptions()).Close(context.Background()))
}

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates both indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())

		require.NoError(mt, EnsureIndexes(context.Background(), NewMongoFromDatabase(mt.DB)))

		started := mt.GetAllStartedEvents()
		require.Len(mt, started, 2)
		for _, ev := range started {
			assert.Equal(mt, "createIndexes", ev.CommandName)
		}
	})

	mt.Run("reports failures", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    85,
			Name:    "IndexOptionsConflict",
			Message: "index exists with different options",
		}))

		err := EnsureIndexes(context.Background(), NewMongoFromDatabase(mt.DB))
		assert.ErrorContains(mt, err, "create index")
	})
}
