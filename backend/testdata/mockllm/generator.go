package mockllm

import (
	"context"

	"github.com/stretchr/testify/mock"

	"courtside/backend/llm"
)

type Generator struct {
	mock.Mock
}

var _ llm.Generator = &Generator{}

func (m *Generator) Generate(ctx context.Context, req llm.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
