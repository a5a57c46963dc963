package projects

import "github.com/chainscope/chainscope/pkg/scoring"

// DefaultDefinitions returns the published project table. Raw values come
// from the sources listed per project, reviewed manually on the recorded
// date. Criteria that do not apply to a network (staking participation on
// proof-of-work chains, upgrade multisigs on chains with no privileged
// upgrade path) are left unset and score as N/A.
func DefaultDefinitions() []Definition {
	f := scoring.Float
	return []Definition{
		{
			ID:            "bitcoin",
			Name:          "Bitcoin",
			Symbol:        "BTC",
			Category:      "layer1",
			ConsensusType: "pow",
			Description:   "The original proof-of-work chain; mining pools stand in for validators.",
			RawValues: scoring.RawValues{
				"A1": f(40),    // distinct pools with recent blocks
				"A2": f(58),    // top-5 pool hashrate share %
				"A3": f(4),     // pool nakamoto coefficient
				"A4": f(97),    // Bitcoin Core node share %
				"A5": f(21000), // reachable full nodes
				"B1": nil,      // no privileged upgrade path: N/A, not 10
				"B2": f(0),     // no foundation stake
				"B3": f(2),     // permissionless mining
				"B4": f(6),     // independent orgs funding core work
				"B5": f(1),     // no halt capability
				"C1": f(0),     // no insider genesis allocation
				"C2": f(6),     // top-10 address supply share %
				"C3": nil,      // no staking: N/A
				"C4": f(0),     // no premine
			},
			LastUpdated: "2026-08-14",
			Sources:     []string{"mempool.space pool stats", "bitnodes.io", "clients.luke.dashjr.org"},
		},
		{
			ID:            "ethereum",
			Name:          "Ethereum",
			Symbol:        "ETH",
			Category:      "layer1",
			ConsensusType: "pos",
			Description:   "Largest proof-of-stake network; scored on the beacon chain validator set.",
			RawValues: scoring.RawValues{
				"A1": f(1050000),
				"A2": f(46), // Lido + exchange staking share
				"A3": f(2),
				"A4": f(52), // geth execution-client share
				"A5": f(6800),
				"B1": nil, // no privileged upgrade path
				"B2": f(0.4),
				"B3": f(2),
				"B4": f(9),
				"B5": f(1),
				"C1": f(17), // pre-sale insider share
				"C2": f(31),
				"C3": f(28),
				"C4": f(60), // genesis supply share of current supply
			},
			LastUpdated: "2026-08-14",
			Sources:     []string{"beaconcha.in", "clientdiversity.org", "ethernodes.org"},
		},
		{
			ID:            "solana",
			Name:          "Solana",
			Symbol:        "SOL",
			Category:      "layer1",
			ConsensusType: "pos",
			Description:   "High-throughput proof-of-stake chain with a history of coordinated restarts.",
			RawValues: scoring.RawValues{
				"A1": f(1400),
				"A2": f(29),
				"A3": f(19),
				"A4": f(92), // Agave client share
				"A5": f(3000),
				"B1": f(1),
				"B2": f(13),
				"B3": f(2),
				"B4": f(2),
				"B5": f(0), // coordinated halts demonstrated
				"C1": f(48),
				"C2": f(26),
				"C3": f(65),
				"C4": f(100),
			},
			LastUpdated: "2026-08-14",
			Sources:     []string{"validators.app", "solanabeach.io", "Solana Foundation disclosures"},
			Notes:       "Total capped at 1.0: validator operators restarted the chain in concert multiple times.",
		},
		{
			ID:            "cosmos",
			Name:          "Cosmos Hub",
			Symbol:        "ATOM",
			Category:      "layer1",
			ConsensusType: "pos",
			Description:   "Tendermint-based hub with a bounded, stake-ranked validator set.",
			RawValues: scoring.RawValues{
				"A1": f(180),
				"A2": f(33),
				"A3": f(7),
				"A4": f(96), // gaiad monoculture
				"A5": f(900),
				"B1": f(4),
				"B2": f(10),
				"B3": f(1), // admission bounded by stake rank
				"B4": f(3),
				"B5": f(1),
				"C1": f(30),
				"C2": f(36),
				"C3": f(62),
				"C4": f(100),
			},
			LastUpdated: "2026-08-13",
			Sources:     []string{"mintscan.io", "map-of-zones"},
		},
		{
			ID:            "bnb",
			Name:          "BNB Chain",
			Symbol:        "BNB",
			Category:      "layer1",
			ConsensusType: "dpos",
			Description:   "Exchange-operated chain with a small, curated validator set.",
			RawValues: scoring.RawValues{
				"A1": f(45),
				"A2": f(71),
				"A3": f(2),
				"A4": nil, // no public client survey
				"A5": f(450),
				"B1": f(1),
				"B2": f(42),
				"B3": f(0), // validator set is curated
				"B4": f(1),
				"B5": f(0), // chain halted by operator action in 2022
				"C1": f(50),
				"C2": f(62),
				"C3": f(14),
				"C4": f(100),
			},
			LastUpdated: "2026-08-13",
			Sources:     []string{"bscscan.com", "incident post-mortems"},
			Notes:       "Total capped at 1.0: the bridge-exploit halt showed unilateral stop capability.",
		},
		{
			ID:            "cardano",
			Name:          "Cardano",
			Symbol:        "ADA",
			Category:      "layer1",
			ConsensusType: "pos",
			Description:   "Ouroboros proof-of-stake with a large pool operator set.",
			RawValues: scoring.RawValues{
				"A1": f(3000),
				"A2": f(22),
				"A3": f(25),
				"A4": f(98), // single node implementation
				"A5": f(3200),
				"B1": f(7),
				"B2": f(11),
				"B3": f(2),
				"B4": f(3),
				"B5": f(1),
				"C1": f(17),
				"C2": f(19),
				"C3": f(59),
				"C4": f(100),
			},
			LastUpdated: "2026-08-12",
			Sources:     []string{"pooltool.io", "cexplorer.io"},
		},
	}
}
