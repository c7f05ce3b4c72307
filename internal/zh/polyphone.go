package zh

// Polyphone resolution. Many characters carry several readings; the
// lookup order is phrase entry, then POS-conditioned reading, then
// the character's most frequent reading.

// phrasePinyin maps multi-character words whose pronunciation is
// context dependent to their numbered pinyin.
var phrasePinyin = map[string]string{
	// 行 (xíng = walk/travel, háng = row/profession)
	"行走": "xing2 zou3",
	"行人": "xing2 ren2",
	"行动": "xing2 dong4",
	"行为": "xing2 wei2",
	"执行": "zhi2 xing2",
	"进行": "jin4 xing2",
	"举行": "ju3 xing2",
	"银行": "yin2 hang2",
	"行业": "hang2 ye4",
	"行列": "hang2 lie4",
	"一行": "yi4 hang2",
	"同行": "tong2 hang2",

	// 了 (le = particle, liǎo = understand/finish)
	"了解":  "liao3 jie3",
	"了不起": "liao3 bu4 qi3",
	"了结":  "liao3 jie2",
	"明了":  "ming2 liao3",
	"受不了": "shou4 bu4 liao3",

	// 得 (de = particle, dé = obtain, děi = must)
	"得到": "de2 dao4",
	"取得": "qu3 de2",
	"获得": "huo4 de2",
	"得知": "de2 zhi1",
	"觉得": "jue2 de5",

	// 地 (dì = earth/ground, de = particle)
	"地方": "di4 fang1",
	"地球": "di4 qiu2",
	"地区": "di4 qu1",
	"土地": "tu3 di4",

	// 的 (de = particle, dí = target, dì = indeed)
	"目的": "mu4 di4",
	"的确": "di2 que4",

	// 还 (hái = still, huán = return)
	"还是": "hai2 shi4",
	"还有": "hai2 you3",
	"还要": "hai2 yao4",
	"归还": "gui1 huan2",
	"偿还": "chang2 huan2",
	"还原": "huan2 yuan2",

	// 长 (cháng = long, zhǎng = grow/chief)
	"长城": "chang2 cheng2",
	"长度": "chang2 du4",
	"长期": "chang2 qi1",
	"长久": "chang2 jiu3",
	"成长": "cheng2 zhang3",
	"生长": "sheng1 zhang3",
	"增长": "zeng1 zhang3",
	"校长": "xiao4 zhang3",
	"部长": "bu4 zhang3",
	"市长": "shi4 zhang3",

	// 重 (zhòng = heavy, chóng = repeat)
	"重要": "zhong4 yao4",
	"重点": "zhong4 dian3",
	"重视": "zhong4 shi4",
	"重量": "zhong4 liang4",
	"重复": "chong2 fu4",
	"重新": "chong2 xin1",

	// 乐 (lè = happy, yuè = music)
	"快乐": "kuai4 le4",
	"欢乐": "huan1 le4",
	"音乐": "yin1 yue4",
	"乐器": "yue4 qi4",

	// 教 (jiào = teach/religion, jiāo = instruct)
	"教育": "jiao4 yu4",
	"教学": "jiao4 xue2",
	"教室": "jiao4 shi4",
	"宗教": "zong1 jiao4",
	"教书": "jiao1 shu1",

	// 数 (shù = number, shǔ = count)
	"数字": "shu4 zi4",
	"数学": "shu4 xue2",
	"数量": "shu4 liang4",
	"数据": "shu4 ju4",

	// 空 (kōng = empty/sky, kòng = free time)
	"空气": "kong1 qi4",
	"空间": "kong1 jian1",
	"天空": "tian1 kong1",
	"空调": "kong1 tiao2",
	"有空": "you3 kong4",

	// 差 (chà = differ, chāi = send, chā = difference)
	"差不多": "cha4 bu5 duo1",
	"差别":  "cha1 bie2",
	"出差":  "chu1 chai1",

	// 难 (nán = difficult, nàn = disaster)
	"困难": "kun4 nan2",
	"难过": "nan2 guo4",
	"难题": "nan2 ti2",
	"灾难": "zai1 nan4",
	"难民": "nan4 min2",

	// 便 (biàn = convenient, pián = cheap)
	"方便": "fang1 bian4",
	"便利": "bian4 li4",
	"便宜": "pian2 yi5",

	// 兴 (xīng = prosper, xìng = interest)
	"高兴": "gao1 xing4",
	"兴趣": "xing4 qu4",
	"兴奋": "xing1 fen4",
	"复兴": "fu4 xing1",

	// 朝 (cháo = dynasty/toward, zhāo = morning)
	"朝代": "chao2 dai4",
	"朝向": "chao2 xiang4",

	// 更 (gèng = more, gēng = change)
	"更加": "geng4 jia1",
	"更好": "geng4 hao3",
	"变更": "bian4 geng1",

	// 处 (chù = place, chǔ = handle)
	"处理": "chu3 li3",
	"到处": "dao4 chu4",
	"处于": "chu3 yu2",

	// 调 (diào = tone/transfer, tiáo = adjust)
	"调查": "diao4 cha2",
	"调整": "tiao2 zheng3",
	"调节": "tiao2 jie2",
	"声调": "sheng1 diao4",

	// 藏 (cáng = hide, zàng = Tibet/storage)
	"西藏": "xi1 zang4",
	"收藏": "shou1 cang2",
	"隐藏": "yin3 cang2",

	// 称 (chēng = call, chèn = fit)
	"称呼": "cheng1 hu1",
	"称为": "cheng1 wei2",
	"名称": "ming2 cheng1",
	"对称": "dui4 chen4",
	"匀称": "yun2 chen4",

	// 少 (shǎo = few, shào = young)
	"多少": "duo1 shao3",
	"减少": "jian3 shao3",
	"少年": "shao4 nian2",
	"少数": "shao3 shu4",

	// 省 (shěng = province/save, xǐng = reflect)
	"省份": "sheng3 fen4",
	"节省": "jie2 sheng3",
	"反省": "fan3 xing3",

	// 相 (xiāng = mutual, xiàng = appearance)
	"相信": "xiang1 xin4",
	"相同": "xiang1 tong2",
	"相关": "xiang1 guan1",
	"照相": "zhao4 xiang4",
	"相机": "xiang4 ji1",
	"真相": "zhen1 xiang4",

	// 好 (hǎo = good, hào = like)
	"你好": "ni3 hao3",
	"好的": "hao3 de5",
	"爱好": "ai4 hao4",
	"好奇": "hao4 qi2",

	// 中 (zhōng = middle, zhòng = hit)
	"中国": "zhong1 guo2",
	"中间": "zhong1 jian1",
	"中心": "zhong1 xin1",
	"命中": "ming4 zhong4",

	// 没 (méi = not have, mò = sink)
	"没有":  "mei2 you3",
	"没关系": "mei2 guan1 xi5",
	"淹没":  "yan1 mo4",
	"沉没":  "chen2 mo4",

	// Common phrases
	"什么":  "shen2 me5",
	"怎么":  "zen3 me5",
	"那么":  "na4 me5",
	"这么":  "zhe4 me5",
	"为什么": "wei4 shen2 me5",
	"喜欢":  "xi3 huan1",
	"知道":  "zhi1 dao4",
	"可以":  "ke3 yi3",
	"应该":  "ying1 gai1",
	"需要":  "xu1 yao4",
	"已经":  "yi3 jing1",
	"虽然":  "sui1 ran2",
	"但是":  "dan4 shi4",
	"因为":  "yin1 wei4",
	"所以":  "suo3 yi3",
	"如果":  "ru2 guo3",
	"这样":  "zhe4 yang4",
	"那样":  "na4 yang4",
	"非常":  "fei1 chang2",
	"特别":  "te4 bie2",
	"比较":  "bi3 jiao4",
	"可能":  "ke3 neng2",
	"必须":  "bi4 xu1",
	"其实":  "qi2 shi2",
	"现在":  "xian4 zai4",
	"以后":  "yi3 hou4",
	"以前":  "yi3 qian2",
}

// posPinyin maps a polyphone to readings conditioned on the POS tag
// prefix used by the segmenter (jieba tag set: v, n, u, d, a ...).
var posPinyin = map[rune]map[string]string{
	'行': {"v": "xing2", "n": "hang2"},
	'了': {"v": "liao3", "u": "le5"},
	'得': {"v": "de2", "u": "de5"},
	'地': {"n": "di4", "u": "de5"},
	'还': {"d": "hai2", "v": "huan2"},
	'长': {"a": "chang2", "v": "zhang3", "n": "zhang3"},
	'重': {"a": "zhong4", "d": "chong2"},
	'乐': {"a": "le4", "n": "yue4"},
	'教': {"n": "jiao4", "v": "jiao1"},
	'数': {"n": "shu4", "v": "shu3"},
}

// defaultPinyin carries the most frequent reading of each polyphone.
var defaultPinyin = map[rune]string{
	'行': "xing2", '了': "le5", '得': "de5", '地': "di4", '的': "de5",
	'还': "hai2", '长': "chang2", '重': "zhong4", '乐': "le4", '教': "jiao4",
	'数': "shu4", '空': "kong1", '差': "cha4", '难': "nan2", '便': "bian4",
	'兴': "xing4", '朝': "chao2", '更': "geng4", '处': "chu4", '调': "diao4",
	'藏': "cang2", '称': "cheng1", '少': "shao3", '省': "sheng3",
	'相': "xiang1", '好': "hao3", '中': "zhong1", '没': "mei2",
}

// LookupPhrase resolves a whole word's reading.
func LookupPhrase(word string) (string, bool) {
	py, ok := phrasePinyin[word]
	return py, ok
}

// LookupPOS resolves a character's reading conditioned on its POS
// tag, trying the full tag and then its first letter.
func LookupPOS(r rune, posTag string) (string, bool) {
	readings, ok := posPinyin[r]
	if !ok {
		return "", false
	}
	if py, ok := readings[posTag]; ok {
		return py, true
	}
	if len(posTag) > 1 {
		if py, ok := readings[posTag[:1]]; ok {
			return py, true
		}
	}
	return "", false
}

// DefaultPinyin resolves a polyphone's most frequent reading.
func DefaultPinyin(r rune) (string, bool) {
	py, ok := defaultPinyin[r]
	return py, ok
}
