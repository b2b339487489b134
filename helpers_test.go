package secadvisor_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibm-cloud-security/go-secadvisor"
)

// recordingExecutor records every descriptor it receives and answers with a
// canned response.
type recordingExecutor struct {
	mu       sync.Mutex
	calls    []recordedCall
	response *secadvisor.RawResponse
	err      error
}

type recordedCall struct {
	cfg *secadvisor.Configuration
	req *secadvisor.RequestDescriptor
}

func (e *recordingExecutor) Execute(_ context.Context, cfg *secadvisor.Configuration, req *secadvisor.RequestDescriptor) (*secadvisor.RawResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, recordedCall{cfg: cfg, req: req})
	if e.err != nil {
		return nil, e.err
	}
	if e.response != nil {
		return e.response, nil
	}
	return &secadvisor.RawResponse{StatusCode: 200, Status: "200 OK"}, nil
}

func (e *recordingExecutor) lastCall(t *testing.T) recordedCall {
	t.Helper()
	e.mu.Lock()
	defer e.mu.Unlock()
	require.NotEmpty(t, e.calls, "executor was not called")
	return e.calls[len(e.calls)-1]
}

func newTestService(t *testing.T, exec secadvisor.Executor, opts ...secadvisor.ServiceOption) *secadvisor.BaseService {
	t.Helper()
	opts = append([]secadvisor.ServiceOption{
		secadvisor.WithAuthenticator(secadvisor.NoAuthAuthenticator{}),
		secadvisor.WithExecutor(exec),
	}, opts...)
	service, err := secadvisor.NewBaseService("findings-api", "https://us-south.secadvisor.cloud.ibm.com/findings", opts...)
	require.NoError(t, err)
	return service
}
