package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/towergrid/internal/algo"
	"github.com/elektrokombinacija/towergrid/internal/core"
)

func TestRenderHTML(t *testing.T) {
	g, err := core.NewGridFromLayout([][]bool{
		{false, false, true},
		{false, false, false},
		{true, false, false},
	})
	require.NoError(t, err)

	opt, err := algo.NewOptimizer(g, core.DefaultCatalog(), 60)
	require.NoError(t, err)
	res := opt.Optimize()
	require.NotEmpty(t, res.Placements)

	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, g, res))

	html := buf.String()
	assert.True(t, strings.Contains(html, "Tower Coverage"))
	assert.True(t, strings.Contains(html, "echarts"))
	assert.Greater(t, buf.Len(), 1000)
}
