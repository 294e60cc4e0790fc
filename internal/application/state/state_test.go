package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateGameOver, "GameOver"},
		{StateStageClear, "StageClear"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameState_TogglePause(t *testing.T) {
	assert.Equal(t, StatePaused, StatePlaying.TogglePause())
	assert.Equal(t, StatePlaying, StatePaused.TogglePause())
	assert.Equal(t, StateGameOver, StateGameOver.TogglePause())
	assert.Equal(t, StateStageClear, StateStageClear.TogglePause())
}

func TestGameState_AfterStep(t *testing.T) {
	tests := []struct {
		name      string
		from      GameState
		died, won bool
		want      GameState
	}{
		{"nothing happened", StatePlaying, false, false, StatePlaying},
		{"died", StatePlaying, true, false, StateGameOver},
		{"won", StatePlaying, false, true, StateStageClear},
		{"death beats the goal", StatePlaying, true, true, StateGameOver},
		{"paused ignores results", StatePaused, true, false, StatePaused},
		{"cleared stays cleared", StateStageClear, true, false, StateStageClear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.AfterStep(tt.died, tt.won)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want == StateGameOver || tt.want == StateStageClear, got.Finished())
		})
	}
}
