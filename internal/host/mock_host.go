package host

import (
	"fmt"
	"sync"
)

// MockWindow implements Window and Geometry for testing with programmable
// failure modes and call counting.
type MockWindow struct {
	mu sync.Mutex

	maximised bool
	width     int
	height    int
	x         int
	y         int

	minimiseCalls   int
	maximiseCalls   int
	unmaximiseCalls int
	closeCalls      int
	queryCalls      int

	failMinimise   bool
	failMaximise   bool
	failUnmaximise bool
	failQuery      bool
	failClose      bool
	failGeometry   bool
}

// NewMockWindow creates a mock window handle in the unmaximized state
func NewMockWindow() *MockWindow {
	return &MockWindow{width: 800, height: 600}
}

// SetMaximised seeds the reported maximized state
func (m *MockWindow) SetMaximised(maximised bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maximised = maximised
}

// SetFailureModes configures which operations report failure
func (m *MockWindow) SetFailureModes(minimise, maximise, unmaximise, query, close bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failMinimise = minimise
	m.failMaximise = maximise
	m.failUnmaximise = unmaximise
	m.failQuery = query
	m.failClose = close
}

// SetGeometryFailure configures whether size/position operations fail
func (m *MockWindow) SetGeometryFailure(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failGeometry = fail
}

// Calls returns the number of minimise/maximise/unmaximise/close requests seen
func (m *MockWindow) Calls() (minimise, maximise, unmaximise, close int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.minimiseCalls, m.maximiseCalls, m.unmaximiseCalls, m.closeCalls
}

// QueryCalls returns the number of IsMaximised queries seen
func (m *MockWindow) QueryCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queryCalls
}

func (m *MockWindow) Minimise() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.minimiseCalls++
	if m.failMinimise {
		return fmt.Errorf("mock: minimise failed")
	}
	return nil
}

func (m *MockWindow) Maximise() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maximiseCalls++
	if m.failMaximise {
		return fmt.Errorf("mock: maximise failed")
	}
	m.maximised = true
	return nil
}

func (m *MockWindow) Unmaximise() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unmaximiseCalls++
	if m.failUnmaximise {
		return fmt.Errorf("mock: unmaximise failed")
	}
	m.maximised = false
	return nil
}

func (m *MockWindow) IsMaximised() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryCalls++
	if m.failQuery {
		return false, fmt.Errorf("mock: state query failed")
	}
	return m.maximised, nil
}

func (m *MockWindow) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeCalls++
	if m.failClose {
		return fmt.Errorf("mock: close failed")
	}
	return nil
}

func (m *MockWindow) Size() (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGeometry {
		return 0, 0, fmt.Errorf("mock: size query failed")
	}
	return m.width, m.height, nil
}

func (m *MockWindow) Position() (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGeometry {
		return 0, 0, fmt.Errorf("mock: position query failed")
	}
	return m.x, m.y, nil
}

func (m *MockWindow) SetSize(width, height int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGeometry {
		return fmt.Errorf("mock: resize failed")
	}
	m.width = width
	m.height = height
	return nil
}

func (m *MockWindow) SetPosition(x, y int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGeometry {
		return fmt.Errorf("mock: move failed")
	}
	m.x = x
	m.y = y
	return nil
}

// MockApplication implements Application for testing
type MockApplication struct {
	dataDir    string
	configDir  string
	failData   bool
	failConfig bool
}

// NewMockApplication creates an application handle resolving to fixed paths
func NewMockApplication(dataDir, configDir string) *MockApplication {
	return &MockApplication{dataDir: dataDir, configDir: configDir}
}

// SetFailureModes configures which directory lookups fail
func (m *MockApplication) SetFailureModes(data, config bool) {
	m.failData = data
	m.failConfig = config
}

func (m *MockApplication) DataDir() (string, error) {
	if m.failData {
		return "", fmt.Errorf("mock: data dir unavailable")
	}
	return m.dataDir, nil
}

func (m *MockApplication) ConfigDir() (string, error) {
	if m.failConfig {
		return "", fmt.Errorf("mock: config dir unavailable")
	}
	return m.configDir, nil
}
