package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRegurg(t *testing.T) {
	assert.Equal(t, RegurgAir, ParseRegurg("air"))
	assert.Equal(t, RegurgMilk, ParseRegurg("milk"))
	assert.Equal(t, RegurgNo, ParseRegurg("no"))
	assert.Equal(t, RegurgUnknown, ParseRegurg("unknown"))
	assert.Equal(t, RegurgUnknown, ParseRegurg(""))
	assert.Equal(t, RegurgUnknown, ParseRegurg("garbage"))
}

func TestRecordPatchIsEmpty(t *testing.T) {
	assert.True(t, RecordPatch{}.IsEmpty())

	d := "01:01:2025"
	assert.False(t, RecordPatch{Date: &d}.IsEmpty())

	r := RegurgNo
	assert.False(t, RecordPatch{Regurg: &r}.IsEmpty())
}
