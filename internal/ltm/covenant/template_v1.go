package covenant

// Lockup template v1: the nested time-lock redemption script paired with a
// 3-byte unlock height. The bytes are compiled contract output and are kept verbatim.
const (
	lockupV1PrefixHex = "" +
		"2097dfd76851bf465e8f715593b217714858bbe9570ff3bd5e33840a34e20ff0262102ba79df5f8ae7604a9830f03c79" +
		"33028186aede0675a16f025dc4f8be8eec0382201008ce7480da41702918d1ec8e6849ba32b4d65b1e40dc669c31a1e6" +
		"306b266c0000"

	lockupV1SuffixHex = "" +
		"610079040065cd1d9f690079547a75537a537a537a5179537a75527a527a7575615579014161517957795779210ac407" +
		"f0e4bd44bfc207355a778b046225a7068fc59ee7eda43ad905aadbffc800206c266b30e6a1319c66dc401e5bd6b432ba" +
		"49688eecd118297041da8074ce081059795679615679aa0079610079517f517f517f517f517f517f517f517f517f517f" +
		"517f517f517f517f517f517f517f517f517f517f517f517f517f517f517f517f517f517f517f517f517f7c7e7c7e7c7e" +
		"7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e" +
		"7c7e7c7e7c7e7c7e01007e81517a75615779567956795679567961537956795479577995939521414136d08c5ed2bf3b" +
		"a048afe6dcaebafeffffffffffffffffffffffffffffff00517951796151795179970079009f63007952799367007968" +
		"517a75517a75517a7561527a75517a517951795296a0630079527994527a75517a685379827752798277537901208051" +
		"7f517f517f517f517f517f517f517f517f517f517f517f517f517f517f517f517f517f517f517f517f517f517f517f51" +
		"7f517f517f517f517f517f517f7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c" +
		"7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e7c7e01205279947f7754537993527993013051797e527e" +
		"54797e58797e527e53797e52797e57797e0079517a75517a75517a75517a75517a75517a75517a75517a75517a75517a" +
		"75517a75517a75517a756100795779ac517a75517a75517a75517a75517a75517a75517a75517a75517a7561517a7551" +
		"7a756169557961007961007982775179517954947f75517958947f77517a75517a756161007901007e81517a7561517a" +
		"7561040065cd1d9f6955796100796100798277517951790128947f755179012c947f77517a75517a756161007901007e" +
		"81517a7561517a756105ffffffff009f69557961007961007982775179517954947f75517958947f77517a75517a7561" +
		"61007901007e81517a7561517a75615279a2695679a95179876957795779ac7777777777777777"
)
