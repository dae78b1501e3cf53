package diamond

import (
	"sync"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/text"
)

// headingWeight is the weight bold text is requested with. The PDF backend
// embeds every face with an empty style but looks WeightBold faces up with
// style "B", so bold faces are registered a second time under this weight.
const headingWeight = xfont.WeightSemiBold

// textHandler returns the text handler shared by every figure. Its cache
// holds the Liberation collection plus its bold faces at headingWeight.
var textHandler = sync.OnceValue(func() text.Handler {
	coll := liberation.Collection()
	cache := font.NewCache(coll)

	var heavy font.Collection
	for _, f := range coll {
		if f.Font.Weight == xfont.WeightBold {
			f.Font.Weight = headingWeight
			heavy = append(heavy, f)
		}
	}
	cache.Add(heavy)

	return text.Plain{Fonts: cache}
})
