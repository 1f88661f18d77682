package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/zoeyai/textgrab/internal/logger"
	"github.com/zoeyai/textgrab/pkg/input"
	"github.com/zoeyai/textgrab/pkg/uia"
)

// fakeElement 固定属性的元素
type fakeElement struct {
	value    uia.Property
	name     uia.Property
	panics   bool
	released int
}

func (e *fakeElement) Value() uia.Property {
	if e.panics {
		panic("property read failed")
	}
	return e.value
}
func (e *fakeElement) Name() uia.Property    { return e.name }
func (e *fakeElement) Info() uia.ElementInfo { return uia.ElementInfo{Name: e.name.Text, Value: e.value.Text} }
func (e *fakeElement) Release()              { e.released++ }

// fakeInspector 返回固定元素
type fakeInspector struct {
	elem     *fakeElement
	err      error
	released int
	queries  [][2]int
}

func (i *fakeInspector) ElementAt(x, y int) (Element, error) {
	i.queries = append(i.queries, [2]int{x, y})
	if i.err != nil {
		return nil, i.err
	}
	if i.elem == nil {
		return nil, nil
	}
	return i.elem, nil
}
func (i *fakeInspector) Release() { i.released++ }

// fakeClipboard 内存剪贴板
type fakeClipboard struct {
	text   string
	writes int
	err    error
}

func (c *fakeClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.writes++
	c.text = text
	return nil
}

func (c *fakeClipboard) ReadText() (string, error) {
	return c.text, nil
}

type harness struct {
	insp  *fakeInspector
	clip  *fakeClipboard
	out   *bytes.Buffer
	opens int
	ex    *Extractor
}

func newHarness(elem *fakeElement, opts ...Option) *harness {
	h := &harness{
		insp: &fakeInspector{elem: elem},
		clip: &fakeClipboard{text: "previous"},
		out:  &bytes.Buffer{},
	}
	cursor := func() (int, int, error) { return 100, 200, nil }
	open := func() (Inspector, error) {
		h.opens++
		return h.insp, nil
	}
	opts = append([]Option{WithLogger(logger.NewWithWriter(h.out))}, opts...)
	h.ex = New(cursor, open, h.clip, opts...)
	return h
}

func (h *harness) assertReleased(t *testing.T) {
	t.Helper()
	if h.insp.released != h.opens {
		t.Errorf("会话应释放 %d 次, 实际 %d", h.opens, h.insp.released)
	}
	if h.insp.elem != nil && len(h.insp.queries) > 0 && h.insp.err == nil && h.insp.elem.released != len(h.insp.queries) {
		t.Errorf("元素应释放 %d 次, 实际 %d", len(h.insp.queries), h.insp.elem.released)
	}
}

// 场景 A: Value 非空时使用 Value
func TestScenarioValue(t *testing.T) {
	h := newHarness(&fakeElement{value: uia.Text("draft text"), name: uia.Text("Subject field")})

	if got := h.ex.Activate(); got != OutcomeCopied {
		t.Fatalf("期望 copied, 实际 %s", got)
	}
	if h.clip.text != "draft text" {
		t.Errorf("剪贴板应为 draft text, 实际 %q", h.clip.text)
	}
	if h.insp.queries[0] != [2]int{100, 200} {
		t.Errorf("应查询鼠标位置, 实际 %v", h.insp.queries[0])
	}
	want := "[OK] Text extracted and copied to clipboard:\ndraft text\n"
	if h.out.String() != want {
		t.Errorf("输出不匹配: %q", h.out.String())
	}
	h.assertReleased(t)
}

// 场景 B: Value 为空时使用 Name
func TestScenarioNameFallback(t *testing.T) {
	h := newHarness(&fakeElement{value: uia.Text(""), name: uia.Text("Submit")})

	if got := h.ex.Activate(); got != OutcomeCopied {
		t.Fatalf("期望 copied, 实际 %s", got)
	}
	if h.clip.text != "Submit" {
		t.Errorf("剪贴板应为 Submit, 实际 %q", h.clip.text)
	}
	h.assertReleased(t)
}

// 场景 C: Value 为空且没有 Name 时不写剪贴板
func TestScenarioNoText(t *testing.T) {
	for _, elem := range []*fakeElement{
		{value: uia.Text(""), name: uia.Absent},
		{value: uia.Absent, name: uia.Absent},
		// Name 存在但为空：被选中但结果为空
		{value: uia.Text(""), name: uia.Text("")},
	} {
		h := newHarness(elem)
		if got := h.ex.Activate(); got != OutcomeNoText {
			t.Fatalf("期望 no-text, 实际 %s", got)
		}
		if h.clip.writes != 0 || h.clip.text != "previous" {
			t.Errorf("剪贴板不应改变, 实际 %q (写入 %d 次)", h.clip.text, h.clip.writes)
		}
		if !strings.Contains(h.out.String(), "[Info] Found a UI element, but it has no text in its Name or Value properties.") {
			t.Errorf("应输出提示信息: %q", h.out.String())
		}
		h.assertReleased(t)
	}
}

// 场景 D: 鼠标下没有元素
func TestScenarioNoElement(t *testing.T) {
	h := newHarness(nil)

	if got := h.ex.Activate(); got != OutcomeNoElement {
		t.Fatalf("期望 no-element, 实际 %s", got)
	}
	if h.clip.writes != 0 {
		t.Error("剪贴板不应改变")
	}
	if h.out.String() != "[Info] No UI element found under the cursor.\n" {
		t.Errorf("输出不匹配: %q", h.out.String())
	}
	h.assertReleased(t)
}

func TestElementFromPointErrorIsNotFound(t *testing.T) {
	h := newHarness(nil)
	h.insp.err = errors.New("E_FAIL")

	if got := h.ex.Activate(); got != OutcomeNoElement {
		t.Fatalf("期望 no-element, 实际 %s", got)
	}
	if strings.Contains(h.out.String(), "[Error]") {
		t.Errorf("找不到元素不是错误: %q", h.out.String())
	}
	h.assertReleased(t)
}

func TestCursorUnavailable(t *testing.T) {
	h := newHarness(&fakeElement{value: uia.Text("x")})
	h.ex.cursor = func() (int, int, error) { return 0, 0, errors.New("no desktop") }

	if got := h.ex.Activate(); got != OutcomeNoCursor {
		t.Fatalf("期望 no-cursor, 实际 %s", got)
	}
	if h.opens != 0 {
		t.Error("拿不到鼠标位置时不应创建会话")
	}
	if !strings.HasPrefix(h.out.String(), "[Info] ") {
		t.Errorf("应为提示信息: %q", h.out.String())
	}
}

func TestOpenFailure(t *testing.T) {
	h := newHarness(nil)
	h.ex.open = func() (Inspector, error) { return nil, uia.ErrUnsupported }

	if got := h.ex.Activate(); got != OutcomeFailed {
		t.Fatalf("期望 failed, 实际 %s", got)
	}
	if !strings.HasPrefix(h.out.String(), "[Error] Failed to create UI Automation instance") {
		t.Errorf("输出不匹配: %q", h.out.String())
	}
}

func TestClipboardBusy(t *testing.T) {
	h := newHarness(&fakeElement{value: uia.Text("draft text")})
	h.clip.err = fmt.Errorf("open: %w", input.ErrClipboardBusy)

	if got := h.ex.Activate(); got != OutcomeClipboardBusy {
		t.Fatalf("期望 clipboard-busy, 实际 %s", got)
	}
	if h.clip.text != "previous" {
		t.Error("剪贴板不应改变")
	}
	if strings.Contains(h.out.String(), "[Error]") {
		t.Errorf("剪贴板被占用不是错误: %q", h.out.String())
	}
	h.assertReleased(t)
}

func TestClipboardFailure(t *testing.T) {
	h := newHarness(&fakeElement{value: uia.Text("draft text")})
	h.clip.err = errors.New("GlobalAlloc failed")

	if got := h.ex.Activate(); got != OutcomeFailed {
		t.Fatalf("期望 failed, 实际 %s", got)
	}
	h.assertReleased(t)
}

// 中途 panic 时句柄仍然释放
func TestPanicReleasesHandles(t *testing.T) {
	h := newHarness(&fakeElement{panics: true})

	if got := h.ex.Activate(); got != OutcomeFailed {
		t.Fatalf("期望 failed, 实际 %s", got)
	}
	if h.insp.elem.released != 1 || h.insp.released != 1 {
		t.Errorf("panic 后仍应释放: element=%d inspector=%d", h.insp.elem.released, h.insp.released)
	}
	if !strings.Contains(h.out.String(), "[Error] Extraction aborted") {
		t.Errorf("应记录错误: %q", h.out.String())
	}
}

// 同一元素连续触发两次，剪贴板内容一致
func TestIdempotent(t *testing.T) {
	h := newHarness(&fakeElement{value: uia.Text(""), name: uia.Text("Submit")})

	h.ex.Activate()
	first, _ := h.clip.ReadText()
	h.ex.Activate()
	second, _ := h.clip.ReadText()

	if first != second || second != "Submit" {
		t.Errorf("两次结果应一致: %q vs %q", first, second)
	}
	if h.opens != 2 {
		t.Errorf("每次激活应创建新会话, 实际 %d", h.opens)
	}
	h.assertReleased(t)
}

func TestEchoDisabled(t *testing.T) {
	h := newHarness(&fakeElement{value: uia.Text("secret")}, WithEcho(false))

	if got := h.ex.Activate(); got != OutcomeCopied {
		t.Fatalf("期望 copied, 实际 %s", got)
	}
	if strings.Contains(h.out.String(), "secret") {
		t.Errorf("关闭回显后不应输出文本: %q", h.out.String())
	}
	if h.clip.text != "secret" {
		t.Error("关闭回显不影响复制")
	}
}

func TestOutcomeString(t *testing.T) {
	for o, want := range map[Outcome]string{
		OutcomeCopied:        "copied",
		OutcomeNoCursor:      "no-cursor",
		OutcomeNoElement:     "no-element",
		OutcomeNoText:        "no-text",
		OutcomeClipboardBusy: "clipboard-busy",
		OutcomeFailed:        "failed",
		Outcome(99):          "unknown",
	} {
		if o.String() != want {
			t.Errorf("Outcome(%d).String() = %q, 期望 %q", int(o), o.String(), want)
		}
	}
}
