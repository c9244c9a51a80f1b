package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/commodity-flow/internal/domain/entity"
)

func TestThemePreference_NextCiclaTresPasos(t *testing.T) {
	for _, start := range []entity.ThemePreference{entity.ThemeLight, entity.ThemeDark, entity.ThemeAuto} {
		p := start
		for i := 0; i < 3; i++ {
			p = p.Next()
		}
		assert.Equal(t, start, p, "tres pasos deben volver al inicio desde %s", start)
	}
	assert.Equal(t, entity.ThemeDark, entity.ThemeLight.Next())
	assert.Equal(t, entity.ThemeAuto, entity.ThemeDark.Next())
	assert.Equal(t, entity.ThemeLight, entity.ThemeAuto.Next())
}

func TestParseThemePreference(t *testing.T) {
	p, ok := entity.ParseThemePreference("dark")
	assert.True(t, ok)
	assert.Equal(t, entity.ThemeDark, p)

	_, ok = entity.ParseThemePreference("sepia")
	assert.False(t, ok)
}

func TestUser_Initials(t *testing.T) {
	assert.Equal(t, "JM", entity.User{Name: "John Manager"}.Initials())
	assert.Equal(t, "SK", entity.User{Name: "sarah  keeper"}.Initials())
	assert.Equal(t, "", entity.User{}.Initials())
}

func TestParseTab(t *testing.T) {
	tab, ok := entity.ParseTab("add-product")
	assert.True(t, ok)
	assert.Equal(t, entity.TabAddProduct, tab)

	_, ok = entity.ParseTab("settings")
	assert.False(t, ok)
}
