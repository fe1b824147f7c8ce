package sink

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutils/trand"
	"github.com/tutils/trand/generator"
	"github.com/tutils/trand/stream"
	"github.com/tutils/trand/synth"
)

func TestParseColumns(t *testing.T) {
	cols, err := ParseColumns("id:bigint:1:1000, name:string:3:12,amount:numeric:6:2,addr:inet")
	require.NoError(t, err)
	assert.Equal(t, []Column{
		{Name: "id", Kind: generator.KindBigInt, Min: "1", Max: "1000"},
		{Name: "name", Kind: generator.KindString, Min: "3", Max: "12"},
		{Name: "amount", Kind: generator.KindNumeric, Min: "6", Max: "2"},
		{Name: "addr", Kind: generator.KindInet},
	}, cols)

	assert.Equal(t, "NUMERIC(6,2)", cols[2].SQLType(DriverPostgres))
	assert.Equal(t, "INET", cols[3].SQLType(DriverPostgres))
	assert.Equal(t, "TEXT", cols[3].SQLType(DriverSQLite))
	assert.Equal(t, "INTEGER", cols[0].SQLType(DriverSQLite))

	for _, bad := range []string{
		"",
		"id",
		"id:bigint:1:2:3",
		"1id:int",
		"id;drop:int",
		"id:nope",
		"id:int,ID:bigint",
		"amount:numeric",
		"amount:numeric:x",
	} {
		_, err := ParseColumns(bad)
		assert.True(t, trand.IsDomainError(err), "%q: %v", bad, err)
	}
}

func openTestDB(t *testing.T) string {
	return filepath.Join(t.TempDir(), "fill.db")
}

func TestFill(t *testing.T) {
	ctx := t.Context()
	db, err := Open(DriverSQLite, openTestDB(t))
	require.NoError(t, err)
	defer db.Close()

	cols, err := ParseColumns("id:bigint:1:1000,name:string:3:12,data:bytea:8,amount:numeric:6:2,id2:uuid,mac:macaddr")
	require.NoError(t, err)

	logger, _ := test.NewNullLogger()
	gen := generator.New(generator.WithSelector(stream.NewSelector(stream.WithSeed(5))))
	n, err := Fill(ctx, db, "items", cols, 50, 10, WithGenerator(gen), WithCount(5), WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 50, n)

	var total int
	require.NoError(t, db.GetContext(ctx, &total, `SELECT count(*) FROM "items"`))
	assert.Equal(t, 50, total)

	// column 0 uses seed 10 and picks among 5 derived streams
	want := map[int64]bool{}
	for idx := uint32(0); idx < 5; idx++ {
		st := stream.Derive(10, idx)
		v, err := synth.Int64(&st, 1, 1000)
		require.NoError(t, err)
		want[v] = true
	}
	var ids []int64
	require.NoError(t, db.SelectContext(ctx, &ids, `SELECT "id" FROM "items"`))
	for _, id := range ids {
		assert.True(t, want[id], "unexpected id %d", id)
	}

	var names []string
	require.NoError(t, db.SelectContext(ctx, &names, `SELECT DISTINCT "name" FROM "items"`))
	assert.LessOrEqual(t, len(names), 5)
	for _, name := range names {
		assert.GreaterOrEqual(t, len(name), 3)
		assert.Less(t, len(name), 12)
	}

	var data [][]byte
	require.NoError(t, db.SelectContext(ctx, &data, `SELECT "data" FROM "items"`))
	for _, d := range data {
		assert.Len(t, d, 8)
	}

	var uuids []string
	require.NoError(t, db.SelectContext(ctx, &uuids, `SELECT "id2" FROM "items"`))
	for _, u := range uuids {
		assert.Len(t, u, 36)
	}

	// a second fill appends to the existing table
	_, err = Fill(ctx, db, "items", cols, 10, 10, WithGenerator(gen), WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, db.GetContext(ctx, &total, `SELECT count(*) FROM "items"`))
	assert.Equal(t, 60, total)
}

func TestFillErrors(t *testing.T) {
	ctx := t.Context()
	db, err := Open(DriverSQLite, openTestDB(t))
	require.NoError(t, err)
	defer db.Close()

	logger, _ := test.NewNullLogger()
	cols, err := ParseColumns("id:int")
	require.NoError(t, err)

	_, err = Fill(ctx, db, "bad name", cols, 1, 0, WithLogger(logger))
	assert.True(t, trand.IsDomainError(err))

	_, err = Fill(ctx, db, "t", cols, 0, 0, WithLogger(logger))
	assert.True(t, trand.IsDomainError(err))

	cols = []Column{{Name: "s", Kind: generator.KindString, Min: "0"}}
	_, err = Fill(ctx, db, "t", cols, 1, 0, WithLogger(logger))
	assert.True(t, trand.IsDomainError(err))

	_, err = Open("mysql", "")
	assert.Error(t, err)
}
