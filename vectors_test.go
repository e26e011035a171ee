package sidh

import (
	"github.com/jedisct1/go-sidh/params"
)

type vector struct {
	id  params.ID
	skA string
	skB string
	pkA string
	pkB string
	ss  string
}

// The p434 entry is the SIDH known-answer test from BoringSSL. The p503, p610
// and p751 entries were produced by this package from the SHAKE256 streams of
// "sidh pNNN alice" and "sidh pNNN bob"; they guard against regressions and
// are not independent answers.
var vectors = []vector{
	{
		id:  params.P434,
		skA: "3A727E04EA9B7E2A766A6F846489E7E7B915263BCEED308BB10FC9",
		skB: "E37BFE55B43B32448F375903D8D226EC94ADBFEA1D2B3536EB987001",
		pkA: "" +
			"9E668D1E6750ED4B91EE052C32839CA9DD2E56D52BC24DECC950AAAD24CEED3F" +
			"9049C77FE80F0B9B01E7F8DAD7833EEC2286544D6380009C379CDD3E7517CEF5" +
			"E20EB01F8231D52FC30DC61D2F63FB357F85DC6396E8A95DB9740BD3A972C8DB" +
			"7901B31F074CD3E45345CA78F900817130E688A29A7CF0073B5C00FF2C65FBE7" +
			"76918EF9BD8E75B29EF7FAB791969B60B0C5B37A8992EDEF95FA7BAC40A95DAF" +
			"E02E237301FEE9A7A43FD0B73477E8035DD12B73FAFEF18D39904DDE3653A754" +
			"F36BE1888F6607C6A7951349A414352CF31A29F2C40302DB406C48018C905EB9" +
			"DC46AFBF42A9187A9BB9E51B587622A2862DC7D5CC598BF38ED6320FB51D8697" +
			"AD3D7A72ABCC32A393F0133DA8DF5E253D9E00B760B2DF342FCE974DCFE946CF" +
			"E4727783531882800F9E5DD594D6D5A6275EEFEF9713ED838F4A06BB34D7B8D4" +
			"6E0B385AAEA1C7963601",
		pkB: "" +
			"C9F73E4497AAA3FDF9EB688135866A8A83934BA10E273B8CC3808CF0C1F5FAB3" +
			"E9BB295885881B73DEBC875670C0F51C4BB40DF5FEDE01B8AF32D1BF10508B8C" +
			"17B2734EB93B2B7F5D84A4A0F2F816E9E2C32AC253C0B6025B124D05A87A9E2A" +
			"8567930F44BAA14219B941B6B400B4AED1D796DA12A5A9F0B8F3F5EE9DD43F64" +
			"CB24A3B1719DF278ADF56B5F3395187829DA2319DEABF6BBD6EDA244DE2B62CC" +
			"5AC250C1009DD1CD4712B0B37406612AD002B5E51A62B51AC9C0374D143ABBBD" +
			"58275FAFC4A5E959C54838C2D6D9FB43B7B2609061267B6A2E6C6D01D295C422" +
			"3E0D3D7A4CDCFB28A7818A737935279751A6DD8290FD498D1F6AD5F4FFF6BDFA" +
			"536713F509DCE8047252F1E7D0DD9FCC414C0070B5DCCE3665A21A032D7FBE74" +
			"9181032183AFAD240B7E671E87FBBEC3A8CA4C11AA7A9A23AC69AE2ACF54B664" +
			"DECD27753D63508F1B02",
		ss: "" +
			"E7C38F69BCEEEE72F110AECEF842535AB7B7299E449F0863D33EAB633C87E0B1" +
			"DB028FF8F95638DC22998E6696C57188F6147B2002780193F24EEBD16FD38EB3" +
			"7F8D17689A36D4566820573C05A369B7C0ADA702B6D2C5DDAFA76F25E4FCFDCF" +
			"6D2DDFF3144DF107E2DC0CAD7A00",
	},
	{
		id:  params.P503,
		skA: "BEE1C84E629C1F688266FD3772345891C17B0DFF9E66B62ACBDC8226B2C0CF00",
		skB: "2C9F8B1810A6A9CE03F88B3E202480E48730D50F2ED1D5399497A58665F36603",
		pkA: "" +
			"008DB6D665886271BA83EDA59F67A20950BE9D58703E555BE75B63C613951CC1" +
			"C1AF986373BCC2C9781F854F5F947892122B4A10BCDA167A7070127A886000D5" +
			"2E8787AB4479E5ABBCC01E21277E4F7971113301D444D465B39307980B922B4A" +
			"932BF300A21669E9C711BD1361303BD3B36B4F8C7A50125D123C6000F614685B" +
			"9703F2CC9F50E92D9F89070C81DE3B534A17E06674DD9708C83E68480F3789AF" +
			"C853D239A9C04000E8282882F593A535CCA78E0A622A23A073246821172A28F0" +
			"1EA61D26BD3B67B7B8FEBBDCAD5022ABE23965BBB90811BB72F365C5386CE620" +
			"340722394B53ADA87AF8D5634BB37A5587CCD86D01C7970D5841AA0EABDC5CB5" +
			"3475D4A7C2DF25D30CD801447FB4F982DB0E3597C1DEE0A733B2E2C877A7D6D3" +
			"514E10CA7963F4C45236B004FBA50D48DDCDAA0E2C7D9346AE000939C59BD266" +
			"3B1E5080AA04587D463876865FCC430D6DCA70B8D909F35043EEC7B5414449A5" +
			"E1082C6AC9BA8D4F1C600618DEC69AEF35C9750B49D2C20BD10E",
		pkB: "" +
			"25312EFE52C19136CAB1F8F8C2D2E3FBAFE4E4AD1ECB3C744A12289368029830" +
			"C2D0AA6278AFC0EF6608919743235B1A65CE716B9F444DAF51757A0C1BBD0ADC" +
			"E19F419EAAA7297C3FE36812C1230D5BEE5A677A64811E2A405C96F3102CFEE6" +
			"28AFC6A848A1A32E7575193A49FBBCCAF4D5F5733ADE614DDA30AAC1212194B9" +
			"11AA4CE66DFF19A124254EABC67C03637BCD9A27DDEA025EFEACBC44967202EF" +
			"D3395DB81DE7B50F738A3CBEE16DC766881596604CE3C74479DDD10334104AA5" +
			"6A6BB917F489FFFA2BBC73AB66A21E4138DFD36ABF78EE4BF3A7BDC7337B910D" +
			"159BB57068EC30A0B11197F8ECE9C2EA66D1995DF2014272272CF314A0BDD283" +
			"EFBF7DF2A3BEE5129A5AB9118A2EF9D266D3D3A2A80C90A5629B2100CA7D8750" +
			"E2A91E29FC71A24C61E6B0B7473EA03B9AAD4435CECE37D0DE1E204C7FF168B5" +
			"97A641F8E9AD7D9D04D5F033915AE602F4EED07CA8A5733078B399415FF369E1" +
			"2A26C072FD3D97520574C472EA055A4530F380D5E74C61242027",
		ss: "" +
			"2CA77A1D3B761783969B1C43326E4EDD5908A6D46CE545AD50DA7C5AE84E3D4A" +
			"D8FFA8213094918F010EF5E515257F7A3D2A8473982C91C55CD491D5554F347B" +
			"AEB989B36C6742BB529588BC299904B65C282C04396930118C1331CAB3314BE6" +
			"0E82972753CEEEA39038EFF3E162D0E8B5AA197E669086596F05AE47DF02",
	},
	{
		id: params.P610,
		skA: "" +
			"A813C87B433EA20477CA1354F1234EE91AA83177A1865E9E5A2A94852BD18CCF" +
			"9F3CA934A03D01",
		skB: "" +
			"6CBE82DF9DE3BE1CFB3898494F6FF3E6579DF6F551309ED669F2A7E062E28699" +
			"411A3F177DA9",
		pkA: "" +
			"ECB1A5168A85E926878D588E7E3C7021491BFBFEC4E7FFCF86C3961B8845D15C" +
			"6F1F426F3734A984517FDD3EABA886F90C1C7F0CB2D0300A8F7F09021B762918" +
			"910B78C61BE89978D352DA1501170E806FDA13242BA7C70283B05B1042C750AB" +
			"98A7D74EA36300C6D9A34CD1DB624409798D22687EB4A1F24BF1342DB4AE88A9" +
			"EA6820697359657AD5E2C7476C35A4C3CA98062A499BBE32180131F793F3BC41" +
			"6A966D0C4A415161735F51897CE565AADEAD9CF048A5C2BADC73E25C8E947D1D" +
			"67DC46FE9F9517AD3DDCBE685A3DCDB887F53A183028AE6084652C713845AE75" +
			"D6B39F19746B0211CA15D336600BA6800BDB425ABC4C5AA727687B9613B09810" +
			"BC02BAE436114E601370D551DA98168E8F57F72685B07441844BDCD79B811F49" +
			"FB8B4C02095FC02988381F7A8FF17B32405F60015D6153BC442145F73D0F1CF9" +
			"BA82290E351DD67F1F82F0D9A04B5C6A0ACD6D29F70E064F6D0CE835E4FFA15F" +
			"AAD424058EC9588878365EDEA1F055BA1EC53EF7AB50073F05160F4947D43210" +
			"02291CB1E7E20563907DCCE736EBC4F63709234BF8F50997B03899F1FDB8F85B" +
			"5FBFC063DEE4C7C57F85C82A5038237B243C2A3D8BB199D0789E2E7C6BE8BFB6" +
			"05D25E2D025A2298963C9E466400",
		pkB: "" +
			"04871B1F9ADD93D107FF0818E41EF96A904AB041A4B59FCCDDBBC9153F0FB495" +
			"025DF4CE91BA07255B2FCBF85956C773CFA9529E0CA1E409AB126984CCCFE195" +
			"676F193FCFB34008232ABF8A00BAD7D57CD1A6F4DE83CB5FC47CCFD9B9C27F91" +
			"206B44524C4DFD8B04F591A2CF0FC12526405D2C4CD373935331AA182D534B15" +
			"62D77DC59FA792EC4F51721AB10136655E2A07C3F1D407E55F00A5BB28B025E2" +
			"2B6432E38DF748C1B23DEED8849E8B93BBD252976735358F40FBF5AFA5B5DF25" +
			"91887ED100251832DC6986D718FC73B725CFC4F171D21995F83D54C391CB05EB" +
			"EFB8391F736D023C968933753A4B45E100F4E661A755318ED69DB4F412358533" +
			"6C77E8ABAED30A0074A36DA2E3A6121EBA7E6D69E703B7958C35E1A997E72D23" +
			"02CC31E2792222EBBF608E0D35D19EC861A26200980E828E7441D00EEBAE734A" +
			"407C5092E67494CFA7D008680E8C79F2384D8BDAA8B9B0E82C3A659FBB3348FF" +
			"EDCEEEBD7E868C3EB7E8AD365BE1CCB150EC9708C4FB60D735732D20F43D7F4B" +
			"024EF01FD130B2F718EA4CB2B636272D746C52E20CFDACAF54B2F941FE250072" +
			"83A4EF9AA51573723EB483CDAC3809740F6679480DD344F036ADF51F62D1B941" +
			"9A63FBFD97CFB6023BE8FCB62601",
		ss: "" +
			"88BE501A17C0FB8A061E652451088CB29604EAC001E328FE52FB8BC57913AAA4" +
			"DCA815DB3F90CB686269E5646D74ACFE89E58ADDCAAB0D4867A519589EEF7A6C" +
			"F295ED1C60900E16D926681C028A6D0EF99C5B7EB0D7C16A70C363A3E9285B20" +
			"6B2C9C864FE365FD14C3CB9369ECAB41545EF67D77F732CE1185BAAC7633334F" +
			"0904ED64A065F50A85903B43EA41CF0A9C252D1E6632D7A15A01",
	},
	{
		id: params.P751,
		skA: "" +
			"34D5F56CC05745622B1FBB68B1FED747C7A8D7C0E259AFFAC0276B76F5A7406E" +
			"03A16CCA73460FD83DE2E578061B07",
		skB: "" +
			"0A84E843CFCF0A0CE70B97DFBE6E6D177C222A24375491C8B1FB5EFF581DE5FD" +
			"CEA18EC72D7067E02332547A4A49C302",
		pkA: "" +
			"1DDF75CB78D657E08A95ACF61AB5D758145CEB065FE0CEA02223536C8A47ACF7" +
			"EDECAB4E4F3979C8BFB393AED34CDFB34ADFC83631FD592B8A66545531BA4826" +
			"7558979365228A635650BEC4D1C4AE7301DB5A7CAB9FF062432CC1A51A5ECDB7" +
			"4EED0F2B2DBE05C33200999CE0A5B3804E2FB158552F827BBF88836AA757AAC7" +
			"D4E88F308E19F637F35933C81FA5F1C56B5C359C3DB5EBE44CE30086283F1E9A" +
			"DEB51FF3E43182D2BF8550E7412EB73D3C1986EF82030C776E37200ADB4736CD" +
			"9E0E516404EC96DCF36EC4556B657FE0F9A26393CA4743F10EAECA63D4F8C7DB" +
			"38F009B69FF139BFD4956AAE4BCBEBD50064DDFD7A5E967CF02ECEC5A5E64254" +
			"72EA6348910FD6B056E79ED84A9B5C6DB538CBF198786DF25D32504533A3BF9B" +
			"959CEB644C116B4FA965BB31ADF217192E50F4EDDF3290F88F744375E3B65330" +
			"A5DCC4BA317DBD5F51B2FC82B268F04FFBD9C7A008DA2813E9C0826B06961B9C" +
			"A5065F763860C332171DC4B7EEE4C5E736FFEBFAC3567315997E8AED9824684F" +
			"5B6F9E918BF4CEF5D10F44E32E14208821302C2FAA82404C965BE4FBAE487285" +
			"8B447C25BFD6C391DD9130E302632C1A0652F215B350D39BE5442E2055B52215" +
			"4052D339CF805FDFC05767CAC24F793C33E88083980E00718864022E5B47151B" +
			"63D36DDFBE57102C54C5DF2816385ED9AE267CBD94C8A55FAF65A993374AE46B" +
			"EA94B6BC79F329560964CABB93BCECF70796ACB09B42E956CFA707844B3BA9E2" +
			"C27E98B8F408617AC2F49E6420A32795913EFD57",
		pkB: "" +
			"69C4E81BE0909327B89696E5381F75480411DBC549E2BF63651761F81281E229" +
			"3C3CA780325D17EA2BED9ED2FDBA70C9BA44286C8E44C8A5ECFF2FE263B030B7" +
			"8EEEF5296A324997740B19F3C619B21CA7E8B109CC5DACD63D2F52B10C5A4560" +
			"ED1622993475374119FCED66E64078F723DF943366CED24C7DE09CC39DAC852A" +
			"9AE185ED9949E6EB52486CB47DDFF8215C596CFF719F3F7A55FFA3D32986A95F" +
			"D7722F08D10BC15E4F7085B2B32465962DD415907EC0822A33A65F10D7C2FA5B" +
			"60CB413CE4CE2458AD88C45AF6976EF31E73158BD3C6504DF83C79D1C3F0D079" +
			"7D8590C939A1365163C066B12D4522A9BBA4B04F5142B63E26D428E68464ADDC" +
			"DCE53D08C235E285606997D0A4DAC61F34E658573685C3C54F01A470DF54029B" +
			"97184D7C69D7695189F9D1CCDC46A6649A57D2EA88E2EAA5EFC6ED2A24648879" +
			"1331029E2BDDF791408B265B6DEB66AED30A08695F8A51DD8066563A8BE251E5" +
			"E6B611FE13869AF36C165C1E0E9EF8F5D42C28CD60106D5E848D480687D0A6FC" +
			"4BDFE9CB15588E7C96340A84DFE6C6D4E7CC1A205C5AA4E5AA852BB03470265C" +
			"624FD1F77E028287AF1413E67F41EAC4C47EA9E1F4512AFA000A63AE40A84F7E" +
			"78089833A191561B767B2DF759D83B4B998333EE384E7F3817210BF068A1F8D8" +
			"ADCFAFAB17F0860E3955D198AA173336055AC831C0C29747940DCB930DE9AACE" +
			"80AFB24DAA38912F49F21063C48FCFB5275FD90FDBE211B91092DC889215A2BA" +
			"24D9563F7E783F375B7150D38B13867D750FBE44",
		ss: "" +
			"9C8DF9B96EF8ECDE1BDAB6A71B49B2B534BD49D01F95241C6F3AFF097F180819" +
			"0BEA5CE2101A8FB852A382086D178BF015D1E18033A28808A043D6DB01D2D13D" +
			"74301408C5123118F3A7E70F896CD24495A4F8B5AEF22547198DA422C42031C7" +
			"CBF2CAF5DFF36A0C0A6A491C3E8BAD9238361D3EAD8FA8B49B9CCBB9581206E3" +
			"3DFA212A369E74779735FBA59C69E0038341DAEBD96CB555B6D3136B300CA141" +
			"05E16FD65E409780153F2D4AD86F3CA70C7AFD03B6E3E3CB94707342",
	},
}
