package cmd

import (
	"encoding/csv"
	"errors"
	"fmt"
	log2 "log"
	"net/http"
	"os"
	"strings"

	"github.com/datagrid/datagrid-apis/config"
	"github.com/datagrid/datagrid-apis/db"
	"github.com/datagrid/datagrid-apis/endpoint"
	"github.com/datagrid/datagrid-apis/log"
	"github.com/datagrid/datagrid-apis/types"
	"github.com/julienschmidt/httprouter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const defaultGraphQLPath = "/graphql"
const defaultRESTPath = "/rest"

const (
	storageMemory    = "memory"
	storageCassandra = "cassandra"
)

// Environment variables prefixed with "DATAGRID_" can override settings e.g. "DATAGRID_HOSTS"
const envVarPrefix = "datagrid"

var cfgFile string
var logger log.Logger

var serverCmd = &cobra.Command{
	Use:   os.Args[0] + " [--storage memory|cassandra] [OPTIONS]",
	Short: "Paginated and sortable table views over REST and GraphQL",
	Args: func(cmd *cobra.Command, args []string) error {
		switch viper.GetString("storage") {
		case storageCassandra:
			if len(getStringSlice("hosts")) == 0 {
				return errors.New("hosts are required")
			}
			if viper.GetString("keyspace") == "" {
				return errors.New("keyspace is required")
			}
		case storageMemory:
		default:
			return fmt.Errorf("unsupported storage '%s'", viper.GetString("storage"))
		}

		if viper.GetBool("start-graphql") && viper.GetString("graphql-path") == viper.GetString("rest-path") {
			return errors.New("graphql and rest paths can not be the same")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		e := createEndpoint()
		defer e.Close()

		router := createRouter()
		endpointNames := "REST"
		addRoutes(router, e.RoutesRest(viper.GetString("rest-path")))

		if viper.GetBool("start-graphql") {
			routes, err := e.RoutesGraphQL(viper.GetString("graphql-path"))
			if err != nil {
				logger.Fatal("unable to generate graphql routes",
					"error", err)
			}
			addRoutes(router, routes)
			endpointNames += "/GraphQL"
		}

		listenAndServe(router, viper.GetInt("port"), endpointNames)
	},
}

// Execute starts the REST and GraphQL endpoints
func Execute() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log2.Fatalf("unable to initialize logger: %v", err)
	}

	logger = log.NewZapLogger(zapLogger)

	flags := serverCmd.PersistentFlags()

	// Storage flags
	flags.StringVarP(&cfgFile, "config", "c", "", "config file")
	flags.String("storage", storageMemory, "where rows are read from. options: memory,cassandra")
	flags.String("data-file", "", "JSON file with the tables served by the memory storage")
	flags.StringSliceP("hosts", "t", nil, "hosts for connecting to the database")
	flags.StringP("username", "u", "", "connect with database username")
	flags.StringP("password", "p", "", "database user's password")
	flags.String("local-dc", "", "data center to route requests to, inferred from the first host when empty")
	flags.String("keyspace", "", "keyspace holding the tables")
	flags.StringSlice("tables", nil, "tables to expose, all tables of the keyspace when empty")

	// Table behavior flags
	flags.StringSlice("page-sizes", []string{"5", "10", "30", "50"}, "page sizes offered by the pager, the first one is the default")
	flags.String("sort-cycle", config.SortCycleAscDescNone.String(), "header click sort cycle. options: asc-desc-none,asc-desc")
	flags.Duration("search-debounce", config.DefaultSearchDebounce, "delay before a search is issued")
	flags.Duration("tables-update-interval", config.DefaultTablesUpdateInterval, "interval used to update the graphql schema")

	// Server flags
	flags.Int("port", 8080, "endpoint port")
	flags.String("rest-path", defaultRESTPath, "REST endpoint path")
	flags.Bool("start-graphql", true, "start the GraphQL endpoint")
	flags.String("graphql-path", defaultGraphQLPath, "GraphQL endpoint path")
	flags.Bool("request-logging", false, "enable request logging")
	flags.String("access-control-allow-origin", "", "Access-Control-Allow-Origin header value")

	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Name != "config" {
			viper.BindPFlag(flag.Name, flags.Lookup(flag.Name))
		}
	})

	cobra.OnInitialize(initialize)

	viper.SetEnvPrefix(envVarPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := serverCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func createConfig() *endpoint.DataEndpointConfig {
	cfg := endpoint.NewEndpointConfigWithLogger(logger, getStringSlice("hosts")...)

	pageSizes, err := config.ParsePageSizes(getStringSlice("page-sizes")...)
	if err != nil {
		logger.Fatal("invalid page sizes", "error", err)
	}
	sortCycle, err := config.ParseSortCycle(viper.GetString("sort-cycle"))
	if err != nil {
		logger.Fatal("invalid sort cycle", "error", err)
	}

	updateInterval := viper.GetDuration("tables-update-interval")
	if updateInterval <= 0 {
		updateInterval = config.DefaultTablesUpdateInterval
	}
	debounce := viper.GetDuration("search-debounce")
	if debounce <= 0 {
		debounce = config.DefaultSearchDebounce
	}

	return cfg.
		WithDbUsername(viper.GetString("username")).
		WithDbPassword(viper.GetString("password")).
		WithLocalDc(viper.GetString("local-dc")).
		WithKeyspace(viper.GetString("keyspace")).
		WithTables(getStringSlice("tables")).
		WithPageSizes(pageSizes).
		WithSortCycle(sortCycle).
		WithSearchDebounce(debounce).
		WithTablesUpdateInterval(updateInterval)
}

func createEndpoint() *endpoint.DataEndpoint {
	cfg := createConfig()

	if viper.GetString("storage") == storageCassandra {
		e, err := cfg.NewEndpoint()
		if err != nil {
			logger.Fatal("unable create new endpoint",
				"error", err)
		}
		return e
	}

	source, err := loadMemorySource(viper.GetString("data-file"))
	if err != nil {
		logger.Fatal("unable to load data file",
			"file", viper.GetString("data-file"),
			"error", err)
	}
	return cfg.NewEndpointWithSource(source)
}

func loadMemorySource(fileName string) (*db.MemorySource, error) {
	if fileName == "" {
		return db.NewMemorySource(nil), nil
	}
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return db.LoadMemorySource(f)
}

func addRoutes(router *httprouter.Router, routes []types.Route) {
	for _, route := range routes {
		router.Handler(route.Method, route.Pattern, route.Handler)
	}
}

func maybeAddRequestLogging(handler http.Handler) http.Handler {
	if viper.GetBool("request-logging") {
		handler = log.NewLoggingHandler(handler, logger)
	}
	return handler
}

func maybeAddCORS(handler http.Handler) http.Handler {
	if value := viper.GetString("access-control-allow-origin"); value != "" {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", value)
			handler.ServeHTTP(w, r)
		})
	}
	return handler
}

func initialize() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err == nil {
			logger.Info("using config file",
				"file", viper.ConfigFileUsed())
		}
	}
}

func createRouter() *httprouter.Router {
	router := httprouter.New()
	if value := viper.GetString("access-control-allow-origin"); value != "" {
		router.GlobalOPTIONS = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Access-Control-Request-Method") != "" {
				header := w.Header()
				header.Set("Access-Control-Allow-Method", r.Header.Get("Access-Control-Request-Method"))
				header.Set("Access-Control-Allow-Headers", r.Header.Get("Access-Control-Request-Headers"))
				header.Set("Access-Control-Allow-Origin", value)
			}

			w.WriteHeader(http.StatusNoContent)
		})
	}
	return router
}

func listenAndServe(handler http.Handler, port int, endpointNames string) {
	logger.Info("server listening",
		"port", port,
		"type", endpointNames)
	handler = maybeAddCORS(maybeAddRequestLogging(handler))
	err := http.ListenAndServe(fmt.Sprintf(":%d", port), handler)
	if err != nil {
		logger.Fatal("unable to start server",
			"port", port,
			"error", err)
	}
}

func getStringSlice(key string) []string {
	value := viper.GetStringSlice(key)
	slice, err := toStringSlice(value)
	if err != nil {
		logger.Fatal("invalid string slice value for setting",
			"error", err,
			"key", key,
			"value", value)
	}
	return slice
}

// toStringSlice splits comma separated entries, env vars arrive as a single entry.
func toStringSlice(slice []string) ([]string, error) {
	result := make([]string, 0)
	for _, entry := range slice {
		csvReader := csv.NewReader(strings.NewReader(entry))
		split, err := csvReader.Read()
		if err != nil {
			return nil, err
		}
		for _, part := range split {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result, nil
}
