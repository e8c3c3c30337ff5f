package navigation

// Stack is a single linear back stack that starts at the list screen.
type Stack struct {
	routes []Route
}

func NewStack() *Stack {
	return &Stack{routes: []Route{ListRoute()}}
}

// Navigate pushes route and makes it current.
func (s *Stack) Navigate(route Route) {
	s.routes = append(s.routes, route)
}

// Current returns the route on top of the stack.
func (s *Stack) Current() Route {
	return s.routes[len(s.routes)-1]
}

// Back pops the current route. The start destination is never popped; Back
// reports whether anything changed.
func (s *Stack) Back() bool {
	if len(s.routes) <= 1 {
		return false
	}
	s.routes = s.routes[:len(s.routes)-1]
	return true
}

// Home drops everything above the start destination.
func (s *Stack) Home() {
	s.routes = s.routes[:1]
}

// Depth returns the number of routes on the stack, including the start.
func (s *Stack) Depth() int {
	return len(s.routes)
}
