package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID   string
	Name string
}

func TestBuildLookup(t *testing.T) {
	rows := []row{{"u1", "Ada"}, {"u2", "Grace"}, {"u1", "Ada L."}}

	m := BuildLookup(rows, func(r row) string { return r.ID })
	assert.Len(t, m, 2)
	assert.Equal(t, "Ada L.", m["u1"].Name)
	assert.Equal(t, "Grace", m["u2"].Name)
}

func TestGroupByPreservesOrder(t *testing.T) {
	rows := []row{{"o1", "a"}, {"o2", "b"}, {"o1", "c"}}

	m := GroupBy(rows, func(r row) string { return r.ID })
	assert.Len(t, m, 2)
	assert.Equal(t, []row{{"o1", "a"}, {"o1", "c"}}, m["o1"])
	assert.Equal(t, []row{{"o2", "b"}}, m["o2"])
}

func TestResolve(t *testing.T) {
	m := map[string]string{"u1": "Ada"}

	assert.Equal(t, "Ada", Resolve(m, "u1", "Unknown User"))
	assert.Equal(t, "Unknown User", Resolve(m, "missing", "Unknown User"))
}

func TestUniqueKeys(t *testing.T) {
	rows := []row{{"u2", ""}, {"u1", ""}, {"u2", ""}, {"u3", ""}}

	keys := UniqueKeys(rows, func(r row) string { return r.ID })
	assert.Equal(t, []string{"u2", "u1", "u3"}, keys)
}
