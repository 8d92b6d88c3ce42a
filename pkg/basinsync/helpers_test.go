package basinsync

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ncfmp/basinsync-go/pkg/basinsync/store"
)

func openStore(t *testing.T, path string) *store.Store {
	t.Helper()
	st, err := store.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}
