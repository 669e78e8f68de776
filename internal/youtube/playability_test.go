package youtube

import "testing"

func TestAssertPlayableOK(t *testing.T) {
	if err := assertPlayable(&playabilityStatus{Status: "OK"}, "vid"); err != nil {
		t.Fatalf("OK status must not raise, got %v", err)
	}
	if err := assertPlayable(nil, "vid"); err != nil {
		t.Fatalf("missing status must not raise, got %v", err)
	}
}

func TestAssertPlayableKinds(t *testing.T) {
	tests := []struct {
		name    string
		status  playabilityStatus
		videoID string
		want    ErrKind
	}{
		{
			name:    "bot check",
			status:  playabilityStatus{Status: "LOGIN_REQUIRED", Reason: "Sign in to confirm you're not a bot"},
			videoID: "vid",
			want:    ErrRequestBlocked,
		},
		{
			name:    "age restricted",
			status:  playabilityStatus{Status: "LOGIN_REQUIRED", Reason: "This video may be inappropriate for some users."},
			videoID: "vid",
			want:    ErrAgeRestricted,
		},
		{
			name:    "unavailable with bare id",
			status:  playabilityStatus{Status: "ERROR", Reason: "This video is unavailable"},
			videoID: "dQw4w9WgXcQ",
			want:    ErrVideoUnavailable,
		},
		{
			name:    "unavailable with url-shaped id",
			status:  playabilityStatus{Status: "ERROR", Reason: "This video is unavailable"},
			videoID: "https://www.youtube.com/watch?foo",
			want:    ErrInvalidVideoID,
		},
		{
			name:    "other login required reason is unplayable",
			status:  playabilityStatus{Status: "LOGIN_REQUIRED", Reason: "Private video"},
			videoID: "vid",
			want:    ErrVideoUnplayable,
		},
		{
			name:    "other error reason is unplayable",
			status:  playabilityStatus{Status: "ERROR", Reason: "Gone"},
			videoID: "vid",
			want:    ErrVideoUnplayable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := assertPlayable(&tt.status, tt.videoID)
			if err == nil {
				t.Fatal("expected error")
			}
			if !IsKind(err, tt.want) {
				t.Errorf("kind = %v, want kind %d", err, tt.want)
			}
		})
	}
}

func TestAssertPlayableSubReasons(t *testing.T) {
	ps := &playabilityStatus{
		Status: "UNPLAYABLE",
		Reason: "This video is not available",
		ErrorScreen: &errorScreen{
			PlayerErrorMessageRenderer: &playerErrorMessageRenderer{
				Subreason: &textRuns{Runs: []textRun{{Text: "first"}, {Text: "second"}}},
			},
		},
	}
	err := assertPlayable(ps, "vid")
	ve, ok := AsVideoError(err)
	if !ok || ve.Kind != ErrVideoUnplayable {
		t.Fatalf("expected ErrVideoUnplayable, got %v", err)
	}
	if len(ve.SubReasons) != 2 || ve.SubReasons[0] != "first" || ve.SubReasons[1] != "second" {
		t.Errorf("SubReasons = %v, want [first second]", ve.SubReasons)
	}
}

func TestAssertPlayableNoSubReasonRenderer(t *testing.T) {
	err := assertPlayable(&playabilityStatus{Status: "UNPLAYABLE", Reason: "nope"}, "vid")
	ve, ok := AsVideoError(err)
	if !ok || ve.Kind != ErrVideoUnplayable {
		t.Fatalf("expected ErrVideoUnplayable, got %v", err)
	}
	if ve.SubReasons == nil || len(ve.SubReasons) != 0 {
		t.Errorf("SubReasons = %#v, want empty list", ve.SubReasons)
	}
}
