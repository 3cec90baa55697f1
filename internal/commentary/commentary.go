// Package commentary picks the results-screen remark for a finished level.
package commentary

import (
	"math/rand"
	"strings"
	"time"

	"github.com/verte-zerg/devilcalc/internal/model"
	"github.com/verte-zerg/devilcalc/internal/stats"
)

// Languages with remark sets.
const (
	LangEnglish = "en"
	LangChinese = "zh"
)

// Tier is an accuracy bracket.
type Tier int

// Accuracy brackets, lowest first.
const (
	TierFailing Tier = iota
	TierPassing
	TierSolid
	TierExcellent
)

// TierFor buckets a rounded accuracy percentage.
func TierFor(percent int) Tier {
	switch {
	case percent >= 95:
		return TierExcellent
	case percent >= 80:
		return TierSolid
	case percent >= 65:
		return TierPassing
	default:
		return TierFailing
	}
}

var remarks = map[string]map[Tier][]string{
	LangEnglish: {
		TierExcellent: {
			"Devilishly good! Your neurons are firing at full throttle!",
			"Flawless. You are at the peak of human efficiency.",
			"Outstanding. Even I am a little impressed.",
			"Your focus is razor sharp. Keep it up!",
		},
		TierSolid: {
			"Not bad. You're starting to sweat, aren't you?",
			"A solid run. You're improving, but don't get cocky.",
			"Acceptable. True genius demands absolute consistency.",
			"Good, but I know you can go faster.",
		},
		TierPassing: {
			"You barely scraped through. Focus harder next time!",
			"Just about acceptable. Don't let your mind wander.",
			"You survived, but your brain is still sluggish.",
			"Sloppy! Tighten up that mental queue.",
		},
		TierFailing: {
			"Pathetic! My calculator watch has more processing power.",
			"Were you even trying? Your attention is all over the place!",
			"Terrible! Your working memory leaks like a sieve.",
			"Disappointing. Maybe we should switch to 1 + 1?",
		},
	},
	LangChinese: {
		TierExcellent: {
			"恶魔般的好表现！你的神经元正在全速运转！",
			"完美！你正处在人类效率的巅峰状态。",
			"卓越！连我都有点被你的表现打动了。",
			"你的专注力如刀锋般锐利。继续保持！",
		},
		TierSolid: {
			"不错嘛。你开始流汗了，对吧？",
			"扎实的表现。你正在进步，但别骄傲自满。",
			"可以接受。但真正的天才需要绝对的一致性。",
			"很好，但我知道你可以更快。",
		},
		TierPassing: {
			"你勉强通过。下次更专注一点！",
			"勉强可以接受。不要让你的思绪飘散。",
			"你活下来了，但你的大脑仍然迟钝。",
			"马虎！你需要收紧你的思维队列。",
		},
		TierFailing: {
			"可悲！我的计算器手表都比你有计算能力。",
			"你到底有没有在尝试？你的注意力到处乱飘！",
			"糟糕！你的工作记忆像个漏水的筛子。",
			"令人失望。也许我们应该换成1+1？",
		},
	},
}

// Supported reports whether lang has a remark set.
func Supported(lang string) bool {
	_, ok := remarks[normalize(lang)]
	return ok
}

// Analyst picks remarks at random.
type Analyst struct {
	rnd  *rand.Rand
	lang string
}

// New returns an Analyst for lang seeded with the current time.
func New(lang string) *Analyst {
	return NewWithSeed(lang, time.Now().UnixNano())
}

// NewWithSeed returns an Analyst with a deterministic choice sequence.
func NewWithSeed(lang string, seed int64) *Analyst {
	lang = normalize(lang)
	if _, ok := remarks[lang]; !ok {
		lang = LangEnglish
	}
	return &Analyst{rnd: rand.New(rand.NewSource(seed)), lang: lang}
}

// Lang returns the language in use.
func (a *Analyst) Lang() string { return a.lang }

// Analyze returns a remark matching the level's accuracy.
func (a *Analyst) Analyze(gs model.GameStats) string {
	options := Remarks(a.lang, TierFor(stats.Percent(gs.Correct, gs.Total)))
	return options[a.rnd.Intn(len(options))]
}

// Remarks returns the remark set for a language and tier.
func Remarks(lang string, tier Tier) []string {
	set, ok := remarks[normalize(lang)]
	if !ok {
		set = remarks[LangEnglish]
	}
	return set[tier]
}

// Pending is shown while a remark is being picked.
func Pending(lang string) string {
	if normalize(lang) == LangChinese {
		return "正在分析神经模式..."
	}
	return "Analyzing neural patterns..."
}

func normalize(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
