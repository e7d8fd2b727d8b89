// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	agentmock "github.com/KirkDiggler/maze-api/internal/agent/mock"
	"github.com/KirkDiggler/maze-api/internal/navigation"
	navigationmock "github.com/KirkDiggler/maze-api/internal/navigation/mock"
)

// ExpectPlayerAt makes the player report pos, visible and alive, for any
// number of calls
func ExpectPlayerAt(player *agentmock.MockPlayer, pos navigation.Vec) {
	player.EXPECT().Position().Return(pos, true).AnyTimes()
	player.EXPECT().IsHiding().Return(false).AnyTimes()
	player.EXPECT().IsAlive().Return(true).AnyTimes()
}

// ExpectPlayerHiding makes the player report pos while hiding in furniture
func ExpectPlayerHiding(player *agentmock.MockPlayer, pos navigation.Vec) {
	player.EXPECT().Position().Return(pos, true).AnyTimes()
	player.EXPECT().IsHiding().Return(true).AnyTimes()
	player.EXPECT().IsAlive().Return(true).AnyTimes()
}

// ExpectSampleInPlace makes the port resolve every sampled point onto
// itself, times times
func ExpectSampleInPlace(nav *navigationmock.MockPort, radius float64, times int) {
	nav.EXPECT().
		SamplePoint(gomock.Any(), gomock.Any(), radius).
		DoAndReturn(func(_ context.Context, near navigation.Vec, _ float64) (navigation.Vec, bool) {
			return near, true
		}).
		Times(times)
}

// ExpectSampleFails makes the port reject every sampled point, times times
func ExpectSampleFails(nav *navigationmock.MockPort, times int) {
	nav.EXPECT().
		SamplePoint(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(navigation.Vec{}, false).
		Times(times)
}
