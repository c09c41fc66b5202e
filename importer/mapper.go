package importer

import (
	"fmt"
	"strings"

	"hoursync/timelog"
)

type Mapper interface {
	Name() string
	Map(row Row, sourceFormat, sourceFile string) (*timelog.Entry, bool, error)
}

func SupportedMapperNames() []string {
	return []string{"generic", "toggl"}
}

func MapperByName(name string) (Mapper, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "generic":
		return &GenericMapper{}, nil
	case "toggl":
		return &TogglMapper{}, nil
	default:
		return nil, fmt.Errorf("unsupported mapper: %s", name)
	}
}
