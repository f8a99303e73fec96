package models

type RDSInstance struct {
	Identifier    string
	Engine        string
	EngineVersion string
	Class         string
	Status        string
	Endpoint      string
	MultiAZ       bool
}
