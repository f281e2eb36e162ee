package endpoints

import (
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/rpifan/rpifan/internal/sensors"
)

const DefaultMountPoint = "/rpifan"

// Tree holds the endpoints below a mount point
type Tree struct {
	mountPoint string
	endpoints  cmap.ConcurrentMap[string, Endpoint]
}

func NewTree(mountPoint string, endpoints ...Endpoint) *Tree {
	if mountPoint == "" {
		mountPoint = DefaultMountPoint
	}
	tree := &Tree{
		mountPoint: "/" + strings.Trim(mountPoint, "/"),
		endpoints:  cmap.New[Endpoint](),
	}
	for _, endpoint := range endpoints {
		tree.Register(endpoint)
	}
	return tree
}

// NewDefaultTree creates a tree with the status and threshold endpoints
func NewDefaultTree(mountPoint string, state StateAccess, sensor sensors.Sensor) *Tree {
	return NewTree(mountPoint,
		NewStatusEndpoint(state, sensor),
		NewThresholdEndpoint(state),
	)
}

func (t *Tree) MountPoint() string {
	return t.mountPoint
}

func (t *Tree) Register(endpoint Endpoint) {
	t.endpoints.Set(endpoint.Name(), endpoint)
}

// Path returns the full path of an endpoint, f.ex. /rpifan/status
func (t *Tree) Path(name string) string {
	return path.Join(t.mountPoint, name)
}

func (t *Tree) Names() []string {
	names := t.endpoints.Keys()
	sort.Strings(names)
	return names
}

func (t *Tree) Get(name string) (Endpoint, error) {
	endpoint, ok := t.endpoints.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, t.Path(name))
	}
	return endpoint, nil
}

func (t *Tree) Open(name string) (*Handle, error) {
	endpoint, err := t.Get(name)
	if err != nil {
		return nil, err
	}
	return &Handle{endpoint: endpoint}, nil
}

// Read returns the content of a single read of the given endpoint
func (t *Tree) Read(name string) ([]byte, error) {
	handle, err := t.Open(name)
	if err != nil {
		return nil, err
	}
	defer handle.Close()
	return io.ReadAll(handle)
}

func (t *Tree) Write(name string, payload []byte) error {
	handle, err := t.Open(name)
	if err != nil {
		return err
	}
	defer handle.Close()
	_, err = handle.Write(payload)
	return err
}
