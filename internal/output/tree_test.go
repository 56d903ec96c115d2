package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFileTree(t *testing.T) {
	out := RenderFileTree("proj", map[string]string{
		"app/Interfaces/OrderInterface.php":           StatusCreated,
		"app/Repositories/OrderRepository.php":        StatusSkipped,
		"app/Providers/RepositoryServiceProvider.php": StatusRegistered,
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "proj/", lines[0])
	assert.Equal(t, "└── app/", lines[1])
	assert.Equal(t, "    ├── Interfaces/", lines[2])

	for file, status := range map[string]string{
		"OrderInterface.php":            StatusCreated,
		"OrderRepository.php":           StatusSkipped,
		"RepositoryServiceProvider.php": StatusRegistered,
	} {
		var found bool
		for _, line := range lines {
			if strings.Contains(line, file) {
				found = true
				assert.True(t, strings.HasSuffix(line, status), "line %q should end with %q", line, status)
			}
		}
		assert.True(t, found, "%s missing from tree", file)
	}
}

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("proj", nil))
}

func TestRenderFileTree_DirectoriesFirst(t *testing.T) {
	out := RenderFileTree("root", map[string]string{
		"b.php":   "",
		"a/c.php": "",
	})

	assert.Equal(t, "root/\n├── a/\n│   └── c.php\n└── b.php\n", out)
}
