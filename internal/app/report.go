package app

import (
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/engine/instance"
)

// Report summarizes the state of a replay.
type Report struct {
	Script    string
	CacheSize int
	Instances []InstanceReport
}

// InstanceReport is the state of one live instance.
type InstanceReport struct {
	Name        string
	RegistryID  string
	InstanceID  string
	Key         string
	Status      string
	Loaded      bool
	EverChanged bool
	Frames      int
	Checksum    uint64
}

// Instance returns the report of the instance named name.
func (r *Report) Instance(name string) (InstanceReport, bool) {
	for _, ir := range r.Instances {
		if ir.Name == name {
			return ir, true
		}
	}
	return InstanceReport{}, false
}

func (s *session) report() *Report {
	r := &Report{
		Script:    s.script.Name,
		CacheSize: s.registry.Env().Cache.Len(),
	}
	for _, name := range s.order {
		inst := s.instances[name]
		ir := InstanceReport{
			Name:       name,
			RegistryID: inst.handle.ID(),
			Frames:     inst.frames,
			Checksum:   inst.checksum,
		}
		if rec, err := s.registry.Record(inst.handle); err == nil {
			ir.InstanceID = rec.Stored().InstanceID
		}
		if base, err := s.registry.Base(inst.handle); err == nil {
			if key, ok := currentKey(base.LocalKeys(), ir.InstanceID); ok {
				ir.Key = key.Digest()
			}
			ir.EverChanged = base.EverChanged()
		}
		ir.Status, _ = inst.host.GetString(domain.ParamStatus)
		ir.Loaded = ir.Status == instance.StatusOK
		r.Instances = append(r.Instances, ir)
	}
	return r
}

// currentKey picks the key built for instanceID. Keys of earlier identities may
// linger in the local cache; without a match the most recently used key wins.
func currentKey(keys []domain.CacheKey, instanceID string) (domain.CacheKey, bool) {
	if len(keys) == 0 {
		return domain.CacheKey{}, false
	}
	for i := len(keys) - 1; i >= 0; i-- {
		if keys[i].InstanceID.String() == instanceID {
			return keys[i], true
		}
	}
	return keys[len(keys)-1], true
}
