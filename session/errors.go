package session

import "fmt"

func errNilDependency(name string) error {
	return fmt.Errorf("session: %s is required", name)
}
