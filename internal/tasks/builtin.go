package tasks

import "github.com/spf13/pflag"

func ServerTask() Definition {
	return Definition{
		Name:  "server",
		Short: "Run the application server.",
		Flags: func(fs *pflag.FlagSet) Builder {
			return ServerCommand
		},
	}
}

func MongoTask() Definition {
	def := Definition{
		Name:  "mongo",
		Short: "Run the mongod process.",
		Help: map[string]string{
			"daemon":    "Fork mongod into the background.",
			"no-daemon": "Keep mongod in the foreground.",
			"port":      "Port for mongod to listen on.",
		},
	}
	def.Flags = func(fs *pflag.FlagSet) Builder {
		opts := DefaultMongoOptions()
		noDaemon := false
		fs.BoolVar(&opts.Daemon, "daemon", opts.Daemon, def.Usage("daemon"))
		fs.BoolVar(&noDaemon, "no-daemon", false, def.Usage("no-daemon"))
		fs.StringVar(&opts.Port, "port", opts.Port, def.Usage("port"))
		return func() Command {
			o := opts
			if noDaemon {
				o.Daemon = false
			}
			return MongoCommand(o)
		}
	}
	return def
}

func MongoShellTask() Definition {
	def := Definition{
		Name:  "mongoshell",
		Short: "Run the mongo shell.",
		Help: map[string]string{
			"db":   "Database to open.",
			"port": "Port mongod is listening on.",
		},
	}
	def.Flags = func(fs *pflag.FlagSet) Builder {
		opts := DefaultMongoShellOptions()
		fs.StringVar(&opts.DB, "db", opts.DB, def.Usage("db"))
		fs.StringVar(&opts.Port, "port", opts.Port, def.Usage("port"))
		return func() Command { return MongoShellCommand(opts) }
	}
	return def
}

func RequirementsTask() Definition {
	return Definition{
		Name:  "requirements",
		Short: "Install dependencies.",
		Flags: func(fs *pflag.FlagSet) Builder {
			return RequirementsCommand
		},
	}
}

func TestTask() Definition {
	def := Definition{
		Name:  "test",
		Short: "Run the test suite.",
		Help: map[string]string{
			"module": "Just runs tests/STRING.py.",
		},
	}
	def.Flags = func(fs *pflag.FlagSet) Builder {
		opts := DefaultTestOptions()
		fs.StringVar(&opts.Module, "module", opts.Module, def.Usage("module"))
		return func() Command { return TestCommand(opts) }
	}
	return def
}
