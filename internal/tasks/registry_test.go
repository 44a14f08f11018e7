package tasks

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(Definition{Name: "sample", Short: "Sample task."})

	def, ok := r.Lookup("sample")
	require.True(t, ok, "handler not found")
	assert.Equal(t, "Sample task.", def.Short)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(Definition{Name: "dup"})
	assert.Panics(t, func() {
		r.Register(Definition{Name: "dup"})
	})
}

func TestRegistryEmptyNamePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry().Register(Definition{})
	})
}

func TestDefaultRegistryOrder(t *testing.T) {
	r := NewDefaultRegistry()
	require.Equal(t, 5, r.Len())

	var names []string
	for _, def := range r.All() {
		names = append(names, def.Name)
	}
	assert.Equal(t, []string{"server", "mongo", "mongoshell", "requirements", "test"}, names)
}

func TestDefaultRegistriesAreIndependent(t *testing.T) {
	a := NewDefaultRegistry()
	b := NewDefaultRegistry()
	a.Register(Definition{Name: "extra"})

	_, ok := b.Lookup("extra")
	assert.False(t, ok)
}

func bind(t *testing.T, def Definition, args ...string) Command {
	t.Helper()
	fs := pflag.NewFlagSet(def.Name, pflag.ContinueOnError)
	build := def.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return build()
}

func TestBuiltinDefaults(t *testing.T) {
	r := NewDefaultRegistry()
	expected := map[string]Command{
		"server":       {Line: "python main.py"},
		"mongo":        {Line: "mongod --port 20771 --fork"},
		"mongoshell":   {Line: "mongo osf20130903 --port 20771", PTY: true},
		"requirements": {Line: "pip install --upgrade -r dev-requirements.txt"},
		"test":         {Line: "nosetests tests/", PTY: true},
	}

	for name, want := range expected {
		t.Run(name, func(t *testing.T) {
			def, ok := r.Lookup(name)
			require.True(t, ok)
			assert.Equal(t, want, bind(t, def))
		})
	}
}

func TestMongoTaskFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"no-daemon", []string{"--no-daemon"}, "mongod --port 20771"},
		{"daemon false", []string{"--daemon=false"}, "mongod --port 20771"},
		{"no-daemon wins", []string{"--daemon", "--no-daemon"}, "mongod --port 20771"},
		{"port", []string{"--port", "30000"}, "mongod --port 30000 --fork"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, bind(t, MongoTask(), tt.args...).Line)
		})
	}
}

func TestMongoShellTaskFlags(t *testing.T) {
	cmd := bind(t, MongoShellTask(), "--db", "osf_test", "--port", "1234")
	assert.Equal(t, "mongo osf_test --port 1234", cmd.Line)
	assert.True(t, cmd.PTY)
}

func TestTestTaskFlags(t *testing.T) {
	cmd := bind(t, TestTask(), "--module", "test_models")
	assert.Equal(t, "nosetests --tests=tests/test_models.py", cmd.Line)
}

func TestBuilderIsRepeatable(t *testing.T) {
	fs := pflag.NewFlagSet("mongo", pflag.ContinueOnError)
	build := MongoTask().Bind(fs)
	require.NoError(t, fs.Parse([]string{"--no-daemon", "--port", "1"}))

	assert.Equal(t, build(), build())
}

func TestDefinitionParameters(t *testing.T) {
	assert.Empty(t, ServerTask().Parameters())
	assert.Equal(t, []string{"daemon=true", "no-daemon=false", "port=20771"}, MongoTask().Parameters())
	assert.Equal(t, []string{"db=osf20130903", "port=20771"}, MongoShellTask().Parameters())
	assert.Equal(t, []string{"module=<unset>"}, TestTask().Parameters())
}

func TestDefinitionSummary(t *testing.T) {
	assert.Equal(t, "Install dependencies.", RequirementsTask().Summary())
	assert.Equal(t, "Run the test suite. (module=<unset>)", TestTask().Summary())
}

func TestBindWithoutFlags(t *testing.T) {
	def := Definition{Name: "noop"}
	assert.Equal(t, Command{}, bind(t, def))
}
