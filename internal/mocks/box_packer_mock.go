// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/snowyaya/box-picker-api/internal/domain/model"
	"github.com/snowyaya/box-picker-api/internal/service"
)

type MockBoxPacker struct {
	mock.Mock
}

func (m *MockBoxPacker) Pack(items []model.Item) (model.PackResult, error) {
	args := m.Called(items)
	return args.Get(0).(model.PackResult), args.Error(1)
}

func (m *MockBoxPacker) Catalog() service.Catalog {
	args := m.Called()
	return args.Get(0).(service.Catalog)
}
