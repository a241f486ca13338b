package list_test

import (
	"strings"

	"github.com/mgnsk/linkedlist/list"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

// identity selects the default equality.
var identity func(a, b string) bool

var _ = Describe("editing a list of lines", func() {
	var l *list.List[string]

	BeforeEach(func() {
		l = list.New[string]()
	})

	AfterEach(func() {
		Expect(list.Validate(l)).To(Succeed())
	})

	Specify("values keep their positions through edits", func() {
		l.Add("a")
		l.Add("b")
		Expect(l.Insert("x", 1)).To(BeTrue())

		Expect(l.Values()).To(Equal([]string{"a", "x", "b"}))
		Expect(l.Len()).To(Equal(3))

		v, ok := l.RemoveAt(1)
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("x"))
		Expect(l.Values()).To(Equal([]string{"a", "b"}))

		Expect(l.Remove("a", nil)).To(BeTrue())
		Expect(l.Values()).To(Equal([]string{"b"}))
		Expect(l.Len()).To(Equal(1))

		Expect(l.Remove("z", nil)).To(BeFalse())
		Expect(l.Values()).To(Equal([]string{"b"}))
	})

	Specify("removing by index returns the removed line", func() {
		for _, line := range []string{"a", "b", "c"} {
			l.Add(line)
		}

		v, ok := l.RemoveAt(1)
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("b"))
		Expect(l.Values()).To(Equal([]string{"a", "c"}))
	})

	When("pushing and popping at both ends", func() {
		Specify("the list behaves as a deque", func() {
			l.PushFront("b")
			l.PushFront("a")
			l.Add("c")

			Expect(l.Values()).To(Equal([]string{"a", "b", "c"}))

			front, _ := l.PopFront()
			back, _ := l.PopBack()
			Expect(front).To(Equal("a"))
			Expect(back).To(Equal("c"))
			Expect(l.Values()).To(Equal([]string{"b"}))
		})
	})

	When("the index is out of range", func() {
		BeforeEach(func() {
			l.Add("a")
			l.Add("b")
		})

		Specify("insert does not modify the list", func() {
			Expect(l.Insert("x", 3)).To(BeFalse())
			Expect(l.Values()).To(Equal([]string{"a", "b"}))
		})

		Specify("remove at does not modify the list", func() {
			_, ok := l.RemoveAt(2)
			Expect(ok).To(BeFalse())
			Expect(l.Values()).To(Equal([]string{"a", "b"}))
		})
	})
})

var _ = Describe("inserting and removing at the same index", func() {
	DescribeTable("restores the original list",
		func(index int) {
			l := list.New[string]()
			for _, v := range []string{"a", "b", "c"} {
				l.Add(v)
			}

			before := l.Values()

			Expect(l.Insert("v", index)).To(BeTrue())
			Expect(list.Validate(l)).To(Succeed())

			v, ok := l.RemoveAt(index)
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("v"))

			Expect(list.Validate(l)).To(Succeed())
			Expect(l.Values()).To(Equal(before))
		},
		Entry("at the front", 0),
		Entry("after the front", 1),
		Entry("before the back", 2),
		Entry("at the end", 3),
	)
})

var _ = Describe("membership and removal", func() {
	DescribeTable("agree with each other",
		func(value string, equals func(a, b string) bool) {
			l := list.New[string]()
			for _, v := range []string{"one", "Two", "three"} {
				l.Add(v)
			}

			before := l.Values()
			contained := l.Contains(value, equals)

			Expect(l.Remove(value, equals)).To(Equal(contained))
			Expect(list.Validate(l)).To(Succeed())

			if contained {
				Expect(l.Len()).To(Equal(len(before) - 1))
			} else {
				Expect(l.Values()).To(Equal(before))
			}
		},
		Entry("present by identity", "one", identity),
		Entry("absent by identity", "two", identity),
		Entry("present by custom equality", "two", strings.EqualFold),
		Entry("absent by custom equality", "four", strings.EqualFold),
	)
})
