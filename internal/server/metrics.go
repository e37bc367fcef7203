package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "watchshelf_registrations_total",
		Help: "Successful account registrations.",
	})

	loginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "watchshelf_logins_total",
		Help: "Successful logins.",
	})

	authFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "watchshelf_auth_failures_total",
		Help: "Rejected logins and registrations.",
	})

	catalogWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "watchshelf_catalog_writes_total",
		Help: "Catalog mutations by collection and operation.",
	}, []string{"collection", "op"})
)
