package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/magiconair/properties"
)

const profilePrefix = "profile."

// ImportProperties reads profiles from a Java style properties file:
//
//	current-profile=bits
//	profile.bits.input=hex
//	profile.bits.output=bin
//	profile.bits.separator={{ " " }}
//	profile.bits.group=4
//
// Imported profiles replace existing ones with the same name. The names of
// the imported profiles are returned in file order.
func (c *Config) ImportProperties(path string) ([]string, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("load properties: %w", err)
	}

	profiles := map[string]*Profile{}
	var names []string
	for _, key := range p.Keys() {
		if !strings.HasPrefix(key, profilePrefix) {
			continue
		}
		rest := strings.TrimPrefix(key, profilePrefix)
		dot := strings.LastIndex(rest, ".")
		if dot <= 0 {
			return nil, fmt.Errorf("invalid profile key %q", key)
		}
		name, field := rest[:dot], rest[dot+1:]
		profile, ok := profiles[name]
		if !ok {
			profile = &Profile{Name: name}
			profiles[name] = profile
			names = append(names, name)
		}

		value := p.MustGetString(key)
		switch field {
		case "input":
			profile.Input = value
		case "output":
			profile.Output = value
		case "separator":
			profile.Separator = value
		case "group":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid group %q for profile %s", value, name)
			}
			profile.Group = n
		default:
			return nil, fmt.Errorf("unknown profile field %q in key %q", field, key)
		}
	}

	for _, name := range names {
		c.Upsert(profiles[name])
	}
	if current, ok := p.Get("current-profile"); ok {
		if !c.HasProfile(current) {
			return nil, fmt.Errorf("current-profile %q is not defined", current)
		}
		c.CurrentProfile = current
	}
	return names, nil
}

// ProfileNames returns the configured profile names, sorted.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for _, profile := range c.Profiles {
		names = append(names, profile.Name)
	}
	sort.Strings(names)
	return names
}
