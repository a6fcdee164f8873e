package config

import (
	"time"

	"github.com/datagrid/datagrid-apis/log"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type ConfigMock struct {
	mock.Mock
}

func NewConfigMock() *ConfigMock {
	return &ConfigMock{}
}

func (o *ConfigMock) Default() *ConfigMock {
	o.On("PageSizes").Return(DefaultPageSizes)
	o.On("SortCycle").Return(SortCycleAscDescNone)
	o.On("Naming").Return(NewDefaultNaming())
	o.On("SearchDebounce").Return(DefaultSearchDebounce)
	o.On("TablesUpdateInterval").Return(DefaultTablesUpdateInterval)
	o.On("Logger").Return(log.NewZapLogger(zap.NewExample()))
	return o
}

func (o *ConfigMock) PageSizes() PageSizes {
	args := o.Called()
	return args.Get(0).(PageSizes)
}

func (o *ConfigMock) SortCycle() SortCycle {
	args := o.Called()
	return args.Get(0).(SortCycle)
}

func (o *ConfigMock) Naming() NamingConvention {
	args := o.Called()
	return args.Get(0).(NamingConvention)
}

func (o *ConfigMock) SearchDebounce() time.Duration {
	args := o.Called()
	return args.Get(0).(time.Duration)
}

func (o *ConfigMock) TablesUpdateInterval() time.Duration {
	args := o.Called()
	return args.Get(0).(time.Duration)
}

func (o *ConfigMock) Logger() log.Logger {
	args := o.Called()
	return args.Get(0).(log.Logger)
}
