package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/MarcGrol/salessimulator/lib/myconfig"
	"github.com/MarcGrol/salessimulator/lib/myevents"
	"github.com/MarcGrol/salessimulator/lib/myhttpclient"
	"github.com/MarcGrol/salessimulator/lib/mylog"
	"github.com/MarcGrol/salessimulator/lib/mypublisher"
	"github.com/MarcGrol/salessimulator/lib/mypubsub"
	"github.com/MarcGrol/salessimulator/lib/myqueue"
	"github.com/MarcGrol/salessimulator/lib/myredis"
	"github.com/MarcGrol/salessimulator/lib/mystore"
	"github.com/MarcGrol/salessimulator/lib/mytime"
	"github.com/MarcGrol/salessimulator/lib/myuuid"
	"github.com/MarcGrol/salessimulator/services/catalog"
	"github.com/MarcGrol/salessimulator/services/currency"
	"github.com/MarcGrol/salessimulator/services/ordering"
	"github.com/MarcGrol/salessimulator/services/salessim"
	"github.com/MarcGrol/salessimulator/services/warmup"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "salessimulator",
	Short: "Order-entry sessions with product search, cart and checkout",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE:  runServe,
}

var catalogCmd = &cobra.Command{
	Use:   "catalog [term]",
	Short: "Search the product catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalog,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional file with environment settings")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catalogCmd)
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	c := context.Background()
	logger := mylog.New("main")

	cfg, err := myconfig.Load(envFile)
	if err != nil {
		return err
	}

	router := mux.NewRouter()

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		return fmt.Errorf("error creating pubsub: %w", err)
	}
	defer pubsubCleanup()

	publisher, publisherCleanup, err := createPublisher(c, router, pubsub)
	if err != nil {
		return err
	}
	defer publisherCleanup()

	sender := myhttpclient.New()

	searcher, err := createCatalog(c, router, cfg, sender)
	if err != nil {
		return err
	}

	rates, ratesCleanup, err := createRateProvider(c, router, cfg, sender)
	if err != nil {
		return err
	}
	defer ratesCleanup()

	orders, ordersCleanup, err := createOrderCreator(c, router, cfg, sender, pubsub, publisher)
	if err != nil {
		return err
	}
	defer ordersCleanup()

	warmup.NewService(searcher, rates, cfg.BaseCurrency).RegisterEndpoints(c, router)

	simConfig, err := salessim.ConfigFrom(cfg)
	if err != nil {
		return fmt.Errorf("error in session configuration: %w", err)
	}
	registry := salessim.NewSessionRegistry(simConfig, mytime.RealNower{}, myuuid.RealUUIDer{}, mytime.RealScheduler{}, searcher, rates, orders)
	defer registry.Close()

	err = salessim.NewService(registry).RegisterEndpoints(c, router)
	if err != nil {
		return fmt.Errorf("error registering session endpoints: %w", err)
	}

	logger.Log(c, "", mylog.SeverityInfo, "Starting webserver on port %s (try http://localhost:%s)", cfg.Port, cfg.Port)
	err = http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), router)
	if err != nil {
		return fmt.Errorf("error starting webserver on port %s: %w", cfg.Port, err)
	}

	return nil
}

func createPublisher(c context.Context, router *mux.Router, pubsub mypubsub.PubSub) (mypublisher.Publisher, func(), error) {
	outbox, outboxCleanup, err := mystore.New[myevents.EventEnvelope](c)
	if err != nil {
		return nil, func() {}, fmt.Errorf("error creating outbox store: %w", err)
	}

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		outboxCleanup()
		return nil, func() {}, fmt.Errorf("error creating task queue: %w", err)
	}

	publisher := mypublisher.New(outbox, pubsub, queue, mytime.RealNower{})
	publisher.RegisterEndpoints(c, router)

	return publisher, func() {
		queueCleanup()
		outboxCleanup()
	}, nil
}

// createCatalog serves the in-process catalog and returns the searcher sessions use: remote when configured.
func createCatalog(c context.Context, router *mux.Router, cfg myconfig.Config, sender myhttpclient.HTTPSender) (catalog.Searcher, error) {
	local := catalog.NewInMemoryCatalog()

	err := catalog.NewService(local).RegisterEndpoints(c, router)
	if err != nil {
		return nil, fmt.Errorf("error registering catalog endpoints: %w", err)
	}

	if cfg.CatalogURL != "" {
		return catalog.NewRemoteSearcher(cfg.CatalogURL, sender), nil
	}
	return local, nil
}

func createRateProvider(c context.Context, router *mux.Router, cfg myconfig.Config, sender myhttpclient.HTTPSender) (currency.RateProvider, func(), error) {
	fixed := currency.NewFixedRates(currency.DefaultRates())

	err := currency.NewService(cfg.BaseCurrency, fixed).RegisterEndpoints(c, router)
	if err != nil {
		return nil, func() {}, fmt.Errorf("error registering rate endpoints: %w", err)
	}

	var rates currency.RateProvider = fixed
	if cfg.RateURL != "" {
		rates = currency.NewRemoteRateProvider(cfg.RateURL, cfg.BaseCurrency, sender)
	}

	if cfg.RedisURL == "" {
		return rates, func() {}, nil
	}

	client, err := myredis.NewConfig(cfg.RedisURL).New(c)
	if err != nil {
		return nil, func() {}, fmt.Errorf("error connecting to redis: %w", err)
	}

	return currency.NewCachingRateProvider(rates, currency.NewRedisRateCache(client), cfg.RateCacheTTL), func() {
		client.Close()
	}, nil
}

func createOrderCreator(c context.Context, router *mux.Router, cfg myconfig.Config, sender myhttpclient.HTTPSender, pubsub mypubsub.PubSub, publisher mypublisher.Publisher) (ordering.OrderCreator, func(), error) {
	orderStore, orderStoreCleanup, err := mystore.New[ordering.Order](c)
	if err != nil {
		return nil, func() {}, fmt.Errorf("error creating order store: %w", err)
	}

	simConfig, err := salessim.ConfigFrom(cfg)
	if err != nil {
		orderStoreCleanup()
		return nil, func() {}, err
	}

	backend := ordering.NewBackend(orderStore, mytime.RealNower{}, myuuid.RealUUIDer{}, pubsub, publisher, simConfig.BaseFormat)
	err = ordering.NewService(backend).RegisterEndpoints(c, router)
	if err != nil {
		orderStoreCleanup()
		return nil, func() {}, fmt.Errorf("error registering order endpoints: %w", err)
	}

	if cfg.OrderURL != "" {
		return ordering.NewRemoteOrderCreator(cfg.OrderURL, sender), orderStoreCleanup, nil
	}
	return backend, orderStoreCleanup, nil
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := myconfig.Load(envFile)
	if err != nil {
		return err
	}
	simConfig, err := salessim.ConfigFrom(cfg)
	if err != nil {
		return err
	}

	term := ""
	if len(args) > 0 {
		term = args[0]
	}

	var searcher catalog.Searcher = catalog.NewInMemoryCatalog()
	if cfg.CatalogURL != "" {
		searcher = catalog.NewRemoteSearcher(cfg.CatalogURL, myhttpclient.New())
	}

	products, err := searcher.Search(cmd.Context(), term)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range products {
		price, err := simConfig.BaseFormat.Apply(p.Price)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-24s %-20s %12s\n", p.ID, p.Name, price)
	}
	fmt.Fprintf(out, "%d products found for '%s'\n", len(products), term)

	return nil
}
