package model

type Coin string
type Network string

var (
	BSV Coin = "BSV"
)

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
	Regtest Network = "regtest"
)
