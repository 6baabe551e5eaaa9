/*
   Copyright 2025 The Echo Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package factory_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/study-game-engines/echo/factory"
)

type circle struct{ radius float64 }

type engine struct{ frames int }

var (
	engineOnce sync.Once
	engineInst *engine
)

func engineInstance() *engine {
	engineOnce.Do(func() { engineInst = &engine{} })
	return engineInst
}

func TestInstanceFactory(t *testing.T) {
	f := factory.NewInstance[circle]("Circle", "Shape", factory.Module("geom"))
	info := f.Info()
	assert.Equal(t, "Circle", info.Name)
	assert.Equal(t, "Shape", info.Parent)
	assert.Equal(t, "geom", info.Module)
	assert.False(t, info.Singleton)
	assert.False(t, info.Virtual)
	assert.Equal(t, reflect.TypeOf(&circle{}), f.Type())

	a := f.Create()
	b := f.Create()
	require.IsType(t, &circle{}, a)
	assert.NotSame(t, a, b)

	d1 := f.DefaultObject()
	d2 := f.DefaultObject()
	assert.Same(t, d1, d2)
	assert.NotSame(t, a, d1)
}

func TestInstanceFactoryConstructor(t *testing.T) {
	f := factory.NewInstance[circle]("Circle", "", factory.Virtual()).
		WithConstructor(func() *circle { return &circle{radius: 1} })
	assert.True(t, f.Info().Virtual)
	assert.Equal(t, 1.0, f.Create().(*circle).radius)
	assert.Equal(t, 1.0, f.DefaultObject().(*circle).radius)
}

func TestSingletonFactory(t *testing.T) {
	f := factory.NewSingleton("Engine", "Object", engineInstance)
	assert.True(t, f.Info().Singleton)
	assert.Same(t, f.Create(), f.Create())
	assert.Nil(t, f.DefaultObject())
}
