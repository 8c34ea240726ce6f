package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributes_CaseInsensitive(t *testing.T) {
	e := NewElement("DIV")
	assert.Equal(t, "div", e.TagName())

	e.SetAttribute("Data-Value", "x")
	v, ok := e.GetAttribute("data-value")
	require.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = e.GetAttribute("DATA-VALUE")
	require.True(t, ok)
	assert.Equal(t, "x", v)

	e.RemoveAttribute("data-VALUE")
	assert.False(t, e.HasAttribute("data-value"))
}

func TestAttributes_NamespaceSeparation(t *testing.T) {
	e := NewElement("svg")
	e.SetAttribute("href", "plain")
	e.SetAttributeNS("http://www.w3.org/1999/xlink", "href", "linked")

	v, _ := e.GetAttribute("href")
	assert.Equal(t, "plain", v)
	v, _ = e.GetAttributeNS("http://www.w3.org/1999/xlink", "href")
	assert.Equal(t, "linked", v)

	e.RemoveAttributeNS("http://www.w3.org/1999/xlink", "href")
	assert.True(t, e.HasAttribute("href"))
	_, ok := e.GetAttributeNS("http://www.w3.org/1999/xlink", "href")
	assert.False(t, ok)
}

func TestAttributeChangeHook(t *testing.T) {
	e := NewElement("div")
	var changes []AttributeChange
	e.OnAttributeChanged = func(c AttributeChange) { changes = append(changes, c) }

	e.SetAttribute("title", "a")
	e.SetAttribute("title", "b")
	e.RemoveAttribute("title")

	require.Len(t, changes, 3)
	assert.False(t, changes[0].OldPresent)
	assert.Equal(t, "a", changes[0].New)
	assert.Equal(t, "a", changes[1].Old)
	assert.Equal(t, "b", changes[1].New)
	assert.True(t, changes[2].OldPresent)
	assert.False(t, changes[2].NewPresent)
}

func TestTokenList(t *testing.T) {
	e := NewElement("div")
	cl := e.ClassList()

	cl.Add("one", "two", "one")
	assert.Equal(t, "one two", cl.String())
	assert.True(t, cl.Contains("one"))
	assert.False(t, cl.Contains("three"))

	cl.Remove("one")
	assert.Equal(t, "two", cl.String())

	// TokenList writes go through the attribute API.
	var changed bool
	e.OnAttributeChanged = func(AttributeChange) { changed = true }
	cl.Add("three")
	assert.True(t, changed)
}

func TestConnectivity_NotifiesParentFirst(t *testing.T) {
	doc := NewDocument()
	parent := NewElement("div")
	child := NewElement("span")
	parent.AppendChild(child)

	var order []string
	parent.OnConnected = func() { order = append(order, "parent") }
	child.OnConnected = func() { order = append(order, "child") }

	assert.False(t, parent.IsConnected())
	doc.Body().AppendChild(parent)
	assert.True(t, parent.IsConnected())
	assert.True(t, child.IsConnected())
	assert.Equal(t, []string{"parent", "child"}, order)
}

func TestConnectivity_RemoveNotifiesDisconnect(t *testing.T) {
	doc := NewDocument()
	el := NewElement("div")
	connects, disconnects := 0, 0
	el.OnConnected = func() { connects++ }
	el.OnDisconnected = func() { disconnects++ }

	doc.Body().AppendChild(el)
	el.Remove()
	assert.Equal(t, 1, connects)
	assert.Equal(t, 1, disconnects)
	assert.False(t, el.IsConnected())
}

func TestConnectivity_MoveIsDisconnectThenConnect(t *testing.T) {
	doc := NewDocument()
	a := NewElement("div")
	b := NewElement("div")
	doc.Body().AppendChild(a)
	doc.Body().AppendChild(b)

	el := NewElement("span")
	var order []string
	el.OnConnected = func() { order = append(order, "connect") }
	el.OnDisconnected = func() { order = append(order, "disconnect") }

	a.AppendChild(el)
	// Re-append elsewhere: removal and insertion are never coalesced.
	b.AppendChild(el)
	assert.Equal(t, []string{"connect", "disconnect", "connect"}, order)
	assert.Same(t, b, el.ParentElement())
}

func TestShadow_ConnectivityFollowsHost(t *testing.T) {
	doc := NewDocument()
	host := NewElement("x-widget")
	shadow := host.AttachShadow()
	inner := NewElement("p")
	connected := false
	inner.OnConnected = func() { connected = true }

	shadow.AppendChild(inner)
	assert.False(t, inner.IsConnected())

	doc.Body().AppendChild(host)
	assert.True(t, connected)
	assert.True(t, inner.IsConnected())
}

func TestDispatch_TargetAndCurrentTarget(t *testing.T) {
	parent := NewElement("div")
	child := NewElement("button")
	parent.AppendChild(child)

	var seen []struct{ target, current Node }
	record := func(ev *Event) {
		seen = append(seen, struct{ target, current Node }{ev.Target(), ev.CurrentTarget()})
	}
	child.AddEventListener("press", record, ListenerOptions{})
	parent.AddEventListener("press", record, ListenerOptions{})

	child.DispatchEvent(&Event{Type: "press", Bubbles: true})
	require.Len(t, seen, 2)
	assert.Same(t, child, seen[0].target)
	assert.Same(t, child, seen[0].current)
	assert.Same(t, child, seen[1].target)
	assert.Same(t, parent, seen[1].current)
}

func TestDispatch_NoBubblingWithoutFlag(t *testing.T) {
	parent := NewElement("div")
	child := NewElement("button")
	parent.AppendChild(child)

	parentCalls := 0
	parent.AddEventListener("press", func(*Event) { parentCalls++ }, ListenerOptions{})
	child.DispatchEvent(&Event{Type: "press"})
	assert.Equal(t, 0, parentCalls)
}

func TestDispatch_CaptureRunsBeforeTarget(t *testing.T) {
	parent := NewElement("div")
	child := NewElement("button")
	parent.AppendChild(child)

	var order []string
	parent.AddEventListener("press", func(*Event) { order = append(order, "capture") }, ListenerOptions{Capture: true})
	child.AddEventListener("press", func(*Event) { order = append(order, "target") }, ListenerOptions{})
	parent.AddEventListener("press", func(*Event) { order = append(order, "bubble") }, ListenerOptions{})

	child.DispatchEvent(&Event{Type: "press", Bubbles: true})
	assert.Equal(t, []string{"capture", "target", "bubble"}, order)
}

func TestDispatch_StopPropagation(t *testing.T) {
	parent := NewElement("div")
	child := NewElement("button")
	parent.AppendChild(child)

	parentCalls := 0
	child.AddEventListener("press", func(ev *Event) { ev.StopPropagation() }, ListenerOptions{})
	parent.AddEventListener("press", func(*Event) { parentCalls++ }, ListenerOptions{})

	child.DispatchEvent(&Event{Type: "press", Bubbles: true})
	assert.Equal(t, 0, parentCalls)
}

func TestDispatch_OnceListener(t *testing.T) {
	e := NewElement("div")
	calls := 0
	e.AddEventListener("ping", func(*Event) { calls++ }, ListenerOptions{Once: true})

	e.DispatchEvent(&Event{Type: "ping"})
	e.DispatchEvent(&Event{Type: "ping"})
	assert.Equal(t, 1, calls)
}

func TestDispatch_PreventDefault(t *testing.T) {
	e := NewElement("div")
	e.AddEventListener("submit", func(ev *Event) { ev.PreventDefault() }, ListenerOptions{})

	ok := e.DispatchEvent(&Event{Type: "submit", Cancelable: true})
	assert.False(t, ok)

	ok = e.DispatchEvent(&Event{Type: "submit"})
	assert.True(t, ok, "PreventDefault is inert on non-cancelable events")
}

func TestDispatch_NonComposedStopsAtShadowRoot(t *testing.T) {
	host := NewElement("x-widget")
	shadow := host.AttachShadow()
	inner := NewElement("button")
	shadow.AppendChild(inner)

	rootCalls, hostCalls := 0, 0
	var rootTarget Node
	shadow.AddEventListener("press", func(ev *Event) {
		rootCalls++
		rootTarget = ev.Target()
	}, ListenerOptions{})
	host.AddEventListener("press", func(*Event) { hostCalls++ }, ListenerOptions{})

	inner.DispatchEvent(&Event{Type: "press", Bubbles: true})
	assert.Equal(t, 1, rootCalls)
	assert.Same(t, inner, rootTarget, "internal root sees the internal node as target")
	assert.Equal(t, 0, hostCalls, "non-composed events are invisible outside the boundary")
}

func TestDispatch_ComposedCrossesBoundary(t *testing.T) {
	doc := NewDocument()
	host := NewElement("x-widget")
	doc.Body().AppendChild(host)
	shadow := host.AttachShadow()
	inner := NewElement("button")
	shadow.AppendChild(inner)

	var hostTarget, hostCurrent, bodyTarget Node
	host.AddEventListener("press", func(ev *Event) {
		hostTarget = ev.Target()
		hostCurrent = ev.CurrentTarget()
	}, ListenerOptions{})
	doc.Body().AddEventListener("press", func(ev *Event) {
		bodyTarget = ev.Target()
	}, ListenerOptions{})

	inner.DispatchEvent(&Event{Type: "press", Bubbles: true, Composed: true})
	assert.Same(t, host, hostCurrent, "host listener runs with the host as currentTarget")
	assert.Same(t, inner, hostTarget, "the host boundary still sees the internal node")
	assert.Same(t, host, bodyTarget, "above the host the target is retargeted")
}

func TestRemoveEventListener(t *testing.T) {
	e := NewElement("div")
	calls := 0
	id := e.AddEventListener("ping", func(*Event) { calls++ }, ListenerOptions{})

	assert.True(t, e.RemoveEventListener("ping", id))
	assert.False(t, e.RemoveEventListener("ping", id))
	e.DispatchEvent(&Event{Type: "ping"})
	assert.Equal(t, 0, calls)
}

func TestQuerySelector(t *testing.T) {
	host := NewElement("x-widget")
	shadow := host.AttachShadow()
	list := NewElement("ul")
	item := NewElement("li")
	item.SetAttribute("id", "first")
	item.ClassList().Add("selected")
	list.AppendChild(item)
	shadow.AppendChild(list)

	assert.Same(t, item, shadow.QuerySelector("li"))
	assert.Same(t, item, shadow.QuerySelector("#first"))
	assert.Same(t, item, shadow.QuerySelector(".selected"))
	assert.Same(t, item, shadow.QuerySelector("[id=first]"))
	assert.Nil(t, shadow.QuerySelector("section"))
	assert.Len(t, shadow.QuerySelectorAll("li"), 1)
}

func TestShadow_ActiveElement(t *testing.T) {
	host := NewElement("x-widget")
	shadow := host.AttachShadow()
	input := NewElement("input")
	shadow.AppendChild(input)

	assert.Nil(t, shadow.ActiveElement())
	input.Focus()
	assert.Same(t, input, shadow.ActiveElement())
}
