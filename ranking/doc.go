// Package ranking 为内容挑选最相关的FAQ条目
//
// 每条FAQ按三个信号对 ContentItem 打分：
//
//	分类命中   +10  item 的分类属于条目的分类之一
//	标签重叠   +5   每个与任一标签互为子串的关键词
//	正文命中   +2   每个出现在 searchable text 中的关键词
//
// 比较均不区分大小写。结果按分数降序排列，同分保持目录顺序，0分条目同样可以入选。
//
// 空字符串不参与匹配，尽管按子串规则它包含于任何字符串：空分类ID不命中任何分类，
// 空标签和空关键词既不计标签重叠也不计正文命中。
//
// 排序只依赖输入，不做I/O，不修改目录，Ranker 可在多个goroutine间共享。
package ranking
