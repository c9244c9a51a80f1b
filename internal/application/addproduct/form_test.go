package addproduct_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodity-flow/internal/application/addproduct"
	"github.com/jhoicas/commodity-flow/internal/application/dto"
	"github.com/jhoicas/commodity-flow/internal/domain"
	"github.com/jhoicas/commodity-flow/internal/infrastructure/memory"
)

func fill(t *testing.T, d *addproduct.Draft) {
	t.Helper()
	require.NoError(t, d.Patch(map[string]string{
		addproduct.FieldName:     "Test",
		addproduct.FieldCategory: "Grains",
		addproduct.FieldPrice:    "10.00",
		addproduct.FieldStock:    "5",
		addproduct.FieldSKU:      "TST-1",
	}))
}

func TestSubmit_NotificaYLimpia(t *testing.T) {
	d := addproduct.NewDraft(10*time.Millisecond, zerolog.Nop())
	fill(t, d)

	n, err := d.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Product Added", n.Title)
	assert.Equal(t, "Test has been successfully added to inventory.", n.Description)

	v := d.View()
	assert.Equal(t, dto.AddProductFields{}, v.Fields)
	assert.False(t, v.Submitting)
	assert.Equal(t, "Add Product", v.SubmitLabel)
}

func TestSubmit_NoModificaElCatalogo(t *testing.T) {
	repo := memory.NewProductRepository(memory.SeedProducts())
	d := addproduct.NewDraft(time.Millisecond, zerolog.Nop())
	fill(t, d)

	_, err := d.Submit(context.Background())
	require.NoError(t, err)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 6)
}

func TestSubmit_SegundoEnvioRechazado(t *testing.T) {
	d := addproduct.NewDraft(200*time.Millisecond, zerolog.Nop())
	fill(t, d)

	done := make(chan error, 1)
	go func() {
		_, err := d.Submit(context.Background())
		done <- err
	}()

	require.Eventually(t, func() bool { return d.View().Submitting }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "Adding Product...", d.View().SubmitLabel)

	_, err := d.Submit(context.Background())
	assert.True(t, errors.Is(err, domain.ErrConflict))

	require.NoError(t, <-done)
}

func TestSubmit_CancelacionConservaBorrador(t *testing.T) {
	d := addproduct.NewDraft(time.Hour, zerolog.Nop())
	fill(t, d)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := d.Submit(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	v := d.View()
	assert.False(t, v.Submitting)
	assert.Equal(t, "Test", v.Fields.Name)
}

func TestSubmit_FormularioIncompleto(t *testing.T) {
	d := addproduct.NewDraft(time.Millisecond, zerolog.Nop())
	require.NoError(t, d.Set(addproduct.FieldName, "Rice"))

	_, err := d.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var verr *addproduct.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, addproduct.FieldCategory)
	assert.Contains(t, verr.Fields, addproduct.FieldPrice)
	assert.Contains(t, verr.Fields, addproduct.FieldStock)
	assert.NotContains(t, verr.Fields, addproduct.FieldName)
	assert.Equal(t, "Rice", d.View().Fields.Name, "un envío inválido no limpia el formulario")
}

func TestValidate_Formatos(t *testing.T) {
	base := dto.AddProductFields{Name: "Rice", Category: "Grains", Price: "1.50", Stock: "0"}
	assert.NoError(t, addproduct.Validate(base))

	cases := map[string]dto.AddProductFields{
		"precio negativo":     {Name: "Rice", Category: "Grains", Price: "-1", Stock: "1"},
		"precio no numérico":  {Name: "Rice", Category: "Grains", Price: "abc", Stock: "1"},
		"stock decimal":       {Name: "Rice", Category: "Grains", Price: "1", Stock: "2.5"},
		"stock negativo":      {Name: "Rice", Category: "Grains", Price: "1", Stock: "-3"},
		"categoría fuera":     {Name: "Rice", Category: "Metals", Price: "1", Stock: "1"},
		"nombre solo espacio": {Name: "  ", Category: "Grains", Price: "1", Stock: "1"},
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, addproduct.Validate(f), domain.ErrInvalidInput)
		})
	}
}

func TestPatch_CampoDesconocidoNoAplicaNada(t *testing.T) {
	d := addproduct.NewDraft(time.Millisecond, zerolog.Nop())
	err := d.Patch(map[string]string{addproduct.FieldName: "Rice", "color": "red"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, d.View().Fields.Name)
}

func TestReset(t *testing.T) {
	d := addproduct.NewDraft(time.Millisecond, zerolog.Nop())
	fill(t, d)
	d.Reset()
	assert.Equal(t, dto.AddProductFields{}, d.View().Fields)
	assert.Len(t, d.View().Categories, 8)
}
