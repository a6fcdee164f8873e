package db

import (
	"github.com/gocql/gocql"
	"go.uber.org/atomic"
)

// dcInferringPolicy routes requests round robin until the first host is discovered, then stays in
// that host's data center.
type dcInferringPolicy struct {
	childPolicy  atomic.Value
	isLocalDcSet atomic.Bool
	onLocalDc    func(dc string)
}

type childPolicyWrapper struct {
	policy gocql.HostSelectionPolicy
}

// NewHostSelectionPolicy keeps requests in localDc. When localDc is empty the data center of the
// first discovered host is used and reported to onLocalDc.
func NewHostSelectionPolicy(localDc string, onLocalDc func(dc string)) gocql.HostSelectionPolicy {
	if localDc != "" {
		return gocql.TokenAwareHostPolicy(gocql.DCAwareRoundRobinPolicy(localDc), gocql.ShuffleReplicas())
	}
	return gocql.TokenAwareHostPolicy(newDcInferringPolicy(onLocalDc), gocql.ShuffleReplicas())
}

func newDcInferringPolicy(onLocalDc func(dc string)) *dcInferringPolicy {
	policy := dcInferringPolicy{onLocalDc: onLocalDc}
	policy.childPolicy.Store(childPolicyWrapper{gocql.RoundRobinHostPolicy()})
	return &policy
}

func (p *dcInferringPolicy) AddHost(host *gocql.HostInfo) {
	if p.isLocalDcSet.CAS(false, true) {
		childPolicy := gocql.DCAwareRoundRobinPolicy(host.DataCenter())
		p.childPolicy.Store(childPolicyWrapper{childPolicy})
		childPolicy.AddHost(host)
		if p.onLocalDc != nil {
			p.onLocalDc(host.DataCenter())
		}
		return
	}
	p.child().AddHost(host)
}

func (p *dcInferringPolicy) child() gocql.HostSelectionPolicy {
	return p.childPolicy.Load().(childPolicyWrapper).policy
}

func (p *dcInferringPolicy) RemoveHost(host *gocql.HostInfo) {
	p.child().RemoveHost(host)
}

func (p *dcInferringPolicy) HostUp(host *gocql.HostInfo) {
	p.child().HostUp(host)
}

func (p *dcInferringPolicy) HostDown(host *gocql.HostInfo) {
	p.child().HostDown(host)
}

func (p *dcInferringPolicy) SetPartitioner(partitioner string) {
	p.child().SetPartitioner(partitioner)
}

func (p *dcInferringPolicy) KeyspaceChanged(e gocql.KeyspaceUpdateEvent) {
	p.child().KeyspaceChanged(e)
}

// Init is not forwarded, the token aware parent never calls it on its fallback.
func (p *dcInferringPolicy) Init(*gocql.Session) {
}

func (p *dcInferringPolicy) IsLocal(host *gocql.HostInfo) bool {
	return p.child().IsLocal(host)
}

func (p *dcInferringPolicy) Pick(query gocql.ExecutableQuery) gocql.NextHost {
	return p.child().Pick(query)
}
