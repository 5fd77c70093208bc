package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMock() (*Client, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return Wrap(db, zap.NewNop()), mock
}

func TestListVersion(t *testing.T) {
	c, mock := newMock()
	mock.ExpectGet(listVersionKey).RedisNil()
	mock.ExpectGet(listVersionKey).SetVal("3")

	v, err := c.ListVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	v, err = c.ListVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetList_Miss(t *testing.T) {
	c, mock := newMock()
	mock.ExpectGet("training_centers:list:2:city=Pune").RedisNil()

	b, ok, err := c.GetList(context.Background(), 2, "city=Pune")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, b)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetList_HitUnfiltered(t *testing.T) {
	c, mock := newMock()
	mock.ExpectGet("training_centers:list:0:*").SetVal(`[]`)

	b, ok, err := c.GetList(context.Background(), 0, "")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(b))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetList_Error(t *testing.T) {
	c, mock := newMock()
	mock.ExpectGet("training_centers:list:0:*").SetErr(errors.New("boom"))

	_, ok, err := c.GetList(context.Background(), 0, "")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestSetList_PerQueryTTL(t *testing.T) {
	c, mock := newMock()
	mock.ExpectSet("training_centers:list:1:state=MH", []byte(`[{"id":1}]`), 30*time.Second).SetVal("OK")

	err := c.SetList(context.Background(), 1, "state=MH", []byte(`[{"id":1}]`), 30*time.Second)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetList_ZeroTTLSkipsWrite(t *testing.T) {
	c, mock := newMock()

	require.NoError(t, c.SetList(context.Background(), 1, "state=MH", []byte(`[]`), 0))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidateList_BumpsVersion(t *testing.T) {
	c, mock := newMock()
	mock.ExpectIncr(listVersionKey).SetVal(4)

	require.NoError(t, c.InvalidateList(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckRateLimit(t *testing.T) {
	c, mock := newMock()
	key := rateLimitPrefix + "1.2.3.4:/api/training-centers"

	mock.ExpectTxPipeline()
	mock.ExpectSetNX(key, 0, time.Minute).SetVal(true)
	mock.ExpectIncr(key).SetVal(1)
	mock.ExpectTxPipelineExec()
	ok, err := c.CheckRateLimit(context.Background(), "1.2.3.4:/api/training-centers", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectTxPipeline()
	mock.ExpectSetNX(key, 0, time.Minute).SetVal(false)
	mock.ExpectIncr(key).SetVal(3)
	mock.ExpectTxPipelineExec()
	ok, err = c.CheckRateLimit(context.Background(), "1.2.3.4:/api/training-centers", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckRateLimit_Error(t *testing.T) {
	c, mock := newMock()
	key := rateLimitPrefix + "k"

	mock.ExpectTxPipeline()
	mock.ExpectSetNX(key, 0, time.Minute).SetErr(errors.New("down"))
	mock.ExpectIncr(key).SetErr(errors.New("down"))
	mock.ExpectTxPipelineExec()

	_, err := c.CheckRateLimit(context.Background(), "k", 2, time.Minute)
	assert.Error(t, err)
}
