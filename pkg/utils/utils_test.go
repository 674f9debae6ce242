package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/factoryplan-go/pkg/utils"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, utils.Clamp(-3, 0, 4))
	assert.Equal(t, 4, utils.Clamp(9, 0, 4))
	assert.Equal(t, 2.5, utils.Clamp(2.5, 0.0, 250.0))
}

func TestGeneratePlanID(t *testing.T) {
	id := utils.GeneratePlanID("Iron Plates (early game)")

	assert.Regexp(t, `^iron-plates-early-game-[0-9a-f]{8}$`, id)
	assert.NotEqual(t, id, utils.GeneratePlanID("Iron Plates (early game)"))
	assert.Regexp(t, `^plan-[0-9a-f]{8}$`, utils.GeneratePlanID("!!!"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "motor-line-2", utils.Slugify("  Motor__Line 2 "))
	assert.Equal(t, "", utils.Slugify("--"))
}
