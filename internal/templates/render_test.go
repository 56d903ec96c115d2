package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderParams(style Style) Params {
	return Params{
		ClassName:          "Order",
		Namespace:          `App\Interfaces`,
		InterfaceNamespace: `App\Interfaces`,
		RootNamespace:      "App",
		Style:              style,
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"", Standalone, false},
		{"standalone", Standalone, false},
		{"BASE", Base, false},
		{"fancy", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStyle(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInterface_Standalone(t *testing.T) {
	out := Interface(orderParams(Standalone))

	assert.True(t, strings.HasPrefix(out, "<?php\n\nnamespace App\\Interfaces;\n"))
	assert.Contains(t, out, "interface OrderInterface\n{")
	for _, sig := range []string{
		"public function find(int $id): mixed;",
		"public function all(): iterable;",
		"public function create(array $data): mixed;",
		"public function update(int $id, array $data): mixed;",
		"public function delete(int $id): bool;",
	} {
		assert.Contains(t, out, sig)
	}
	assert.NotContains(t, out, "BaseInterface")
	assert.False(t, strings.HasSuffix(out, "\n"), "rendered text must not end with a newline")
}

func TestInterface_Base(t *testing.T) {
	p := orderParams(Base)
	p.Namespace = `App\Interfaces\Billing`
	out := Interface(p)

	assert.Contains(t, out, `namespace App\Interfaces\Billing;`)
	assert.Contains(t, out, `use App\Interfaces\BaseInterface;`)
	assert.Contains(t, out, "interface OrderInterface extends BaseInterface\n{\n}")
}

func TestRepository_Standalone(t *testing.T) {
	p := orderParams(Standalone)
	p.Namespace = `App\Repositories\Billing\Invoices`
	p.InterfaceNamespace = `App\Interfaces\Billing\Invoices`
	out := Repository(p)

	assert.Contains(t, out, `namespace App\Repositories\Billing\Invoices;`)
	assert.Contains(t, out, `use App\Interfaces\Billing\Invoices\OrderInterface;`)
	assert.Contains(t, out, "class OrderRepository implements OrderInterface")
	assert.Contains(t, out, "public function delete(int $id): bool\n    {\n        return false;\n    }")
}

func TestRepository_Base(t *testing.T) {
	p := orderParams(Base)
	p.Namespace = `App\Repositories`
	out := Repository(p)

	assert.Contains(t, out, "class OrderRepository extends BaseRepository implements OrderInterface")
	assert.Contains(t, out, `use App\Models\Order;`)
	assert.Contains(t, out, "public function __construct(Order $order)")
	assert.Contains(t, out, "parent::__construct($order);")
}

func TestService(t *testing.T) {
	out := Service(Params{ClassName: "InvoiceService", Namespace: `App\Services`})

	assert.Equal(t, "<?php\n\nnamespace App\\Services;\n\nclass InvoiceService\n{\n    // Service implementation\n}", out)
}

func TestBaseFiles(t *testing.T) {
	iface := BaseInterface(Params{Namespace: `App\Interfaces`})
	assert.Contains(t, iface, "interface BaseInterface")
	assert.Contains(t, iface, "public function delete(int|array $ids): ?bool;")

	repo := BaseRepository(Params{Namespace: `App\Repositories`, InterfaceNamespace: `App\Interfaces`})
	assert.Contains(t, repo, `use App\Interfaces\BaseInterface;`)
	assert.Contains(t, repo, "class BaseRepository implements BaseInterface")
	assert.Contains(t, repo, "$this->model = $model;")
}

func TestProviderClass(t *testing.T) {
	out := ProviderClass(Params{
		ClassName: "RepositoryServiceProvider",
		Namespace: `App\Providers`,
		Anchor:    "// @ris:bindings",
	})

	assert.Contains(t, out, `namespace App\Providers;`)
	assert.Contains(t, out, "class RepositoryServiceProvider extends ServiceProvider")
	assert.Contains(t, out, "public function register(): void\n    {\n        // @ris:bindings\n    }")
}

func TestRender_Deterministic(t *testing.T) {
	p := orderParams(Standalone)
	for _, kind := range []Kind{KindInterface, KindRepository, KindService, KindBaseInterface, KindBaseRepository, KindProvider} {
		first, err := Render(kind, p)
		require.NoError(t, err)
		second, err := Render(kind, p)
		require.NoError(t, err)
		assert.Equal(t, first, second, "kind %s", kind)
	}
}

func TestRender_UnknownKind(t *testing.T) {
	_, err := Render("widget", Params{})
	assert.Error(t, err)
}
