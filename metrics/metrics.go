package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "contact_api"

// Submissions counts contact form submissions by pipeline outcome: accepted,
// spam, rate_limited, invalid or failed.
var Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "submissions_total",
	Help:      "number of contact form submissions by outcome",
}, []string{"outcome"})

// Emails counts outbound emails by kind (notification, confirmation) and
// result (sent, failed).
var Emails = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "emails_total",
	Help:      "number of outbound emails by kind and result",
}, []string{"kind", "result"})
