package entities

import "testing"

func TestProcessorError_ClientMessage(t *testing.T) {
	cases := []struct {
		name string
		err  ProcessorError
		want string
	}{
		{
			"first cause description wins",
			ProcessorError{Message: "bad_request", Cause: []ProcessorErrorCause{{Description: "cc_rejected_bad_filled_date"}, {Description: "other"}}},
			"cc_rejected_bad_filled_date",
		},
		{
			"empty descriptions are skipped",
			ProcessorError{Message: "bad_request", Cause: []ProcessorErrorCause{{Description: ""}, {Description: "invalid_token"}}},
			"invalid_token",
		},
		{
			"message when no cause",
			ProcessorError{Message: "Payment not found"},
			"Payment not found",
		},
		{
			"empty when processor gave nothing",
			ProcessorError{},
			"",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.ClientMessage(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestProcessorError_Error(t *testing.T) {
	withStatus := &ProcessorError{StatusCode: 404, Message: "Payment not found"}
	if withStatus.Error() != "processor error (status 404): Payment not found" {
		t.Fatalf("unexpected error string: %s", withStatus.Error())
	}

	withoutStatus := &ProcessorError{Message: "timeout"}
	if withoutStatus.Error() != "processor error: timeout" {
		t.Fatalf("unexpected error string: %s", withoutStatus.Error())
	}
}
