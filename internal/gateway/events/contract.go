//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=events_test
package events

type producer interface {
	Send(topic, key string, value []byte) error
}
