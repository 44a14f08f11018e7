package tasks

import "fmt"

const (
	DefaultMongoPort = "20771"
	DefaultMongoDB   = "osf20130903"

	RequirementsFile = "dev-requirements.txt"
	TestsDir         = "tests"
)

// MongoOptions configures the mongod process
type MongoOptions struct {
	Daemon bool
	Port   string
}

func DefaultMongoOptions() MongoOptions {
	return MongoOptions{Daemon: true, Port: DefaultMongoPort}
}

// MongoShellOptions configures the interactive mongo shell
type MongoShellOptions struct {
	DB   string
	Port string
}

func DefaultMongoShellOptions() MongoShellOptions {
	return MongoShellOptions{DB: DefaultMongoDB, Port: DefaultMongoPort}
}

// TestOptions selects what the test runner executes. An empty Module runs
// the whole tests directory.
type TestOptions struct {
	Module string
}

func DefaultTestOptions() TestOptions {
	return TestOptions{}
}

// ServerCommand starts the application's main process.
func ServerCommand() Command {
	return Command{Line: "python main.py"}
}

// MongoCommand starts mongod, forking into the background when Daemon is set.
func MongoCommand(opts MongoOptions) Command {
	line := fmt.Sprintf("mongod --port %s", opts.Port)
	if opts.Daemon {
		line += " --fork"
	}
	return Command{Line: line}
}

// MongoShellCommand opens the mongo shell on a pseudo-terminal.
func MongoShellCommand(opts MongoShellOptions) Command {
	return Command{
		Line: fmt.Sprintf("mongo %s --port %s", opts.DB, opts.Port),
		PTY:  true,
	}
}

// RequirementsCommand installs the pinned development dependencies.
func RequirementsCommand() Command {
	return Command{Line: fmt.Sprintf("pip install --upgrade -r %s", RequirementsFile)}
}

// TestCommand runs nosetests on a pseudo-terminal so it buffers its output
// the way it does interactively.
func TestCommand(opts TestOptions) Command {
	args := fmt.Sprintf(" %s/", TestsDir)
	if opts.Module != "" {
		args = fmt.Sprintf(" --tests=%s/%s.py", TestsDir, opts.Module)
	}
	return Command{Line: "nosetests" + args, PTY: true}
}
