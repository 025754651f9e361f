// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package vru

// dictionary maps the hex encoded phoneme codes sent by a game to the word that
// the codes represent. the codes are the concatenation of the uint16 values in
// the word buffer, each formatted as four upper case hex digits.
var dictionary = map[string]string{
	"03A50024000303CF00A80003036000EA": "pikachu",
	"03A50045000303CF00A80003036000EA": "pikachu",
	"03A50024000303C900450003036000EA": "pikachu",
	"03A8018F000303CF00A80003036000EA": "pikachu",
	"03B101B0000303CF00A80003036000EA": "pikachu",
	"03CF00A80003036000EA": "pikachu",
	"03A80066000303CF00A80003036000F900EA": "pikachu",
	"03A50024000303CF00A80003035D001200F900EA": "pikachu",
	"040801740024": "hey!",
	"03CF00C603360405000F0234": "come-here",
	"0369004803FC0318018F": "this-way",
	"039C010B000603900006037B01B0": "good-bye",
	"039900A80006037B01B0": "good-bye",
	"03F900090309009F02E2018F000303BD0234": "see-you-later",
	"037B01B00006037B01B0": "bye-bye",
	"03FC000303C30255000303C6": "start",
	"02E2006903FC000303B402E2018F": "lets-play",
	"040B00C002EB0213": "hello",
	"043B0213000303AB00A5034803FC006903FC00A503270024": "open-sesame",
	"043B0213000303A80063034803FC006903FC00A503270024": "open-sesame",
	"039F01FE00990318018F": "go-away",
	"039C010B00060390033302D603390042035A": "good-morning",
	"039900A5033302D603390042035A": "good-morning",
	"042F01AD033603FC023A0024": "im-sorry",
	"042F01AD033603FC012602F10024": "im-sorry",
	"03FC023A0024": "sorry",
	"03FC012602F10024": "sorry",
	"042F01B00003036000ED03DB030C00EA": "i-choose-you",
	"04080174030C00EA000303A50024000303CF00A80003036000EA": "hey-you-pikachu",
	"03A50024000303CF00A8000303A50024000303CF00A80003036000EA": "pika-pikachu",
	"03A50024000303CF00A8000303A50024000303CF00A8000303A50024": "pika-pika-pi",
	"03A50024000303A50024000303CF00A80003036000EA": "pi-pikachu",
	"03A50024000303A50024000303CF00A8000303A50024": "pi-pika-pi",
	"03A50024000303D8000303CF00C9": "pikka",
	"03A50024000303CF00A8": "pika",
	"03A50024000303CF00A8000303A50024000303CF00A8": "pikapika",
	"03A503030024000303CF00A8": "pi-ka",
	"03A50024000303CF00C9000303CF00C9": "pi-ka-ka-",
	"03A50024000303CF00A8000303CF00A8000303A50024": "pi-kakapi-",
	"037E02F10042035A036C0087000303C604050297": "bring-that-here",
	"039F0213000603960066000303B70045000303C6": "go-get-it",
	"0393004803E70045000303C6000303C000E703270024": "give-it-to-me",
	"0393004203270027036C0087000303C6": "gimme-that",
	"03F600C603480006038702370402014D000303D8": "thundershock",
	"03F600C603480006038702340006037B020A02EE000303C6": "thunderbolt",
	"03F600C60348000603870234": "thunder",
	"03F600C6033F0234": "thunder",
	"0432009F02E20066000303D8000303C602F10045000303D802F40087000303C6": "electric-rat",
	"0426001B02E20066000303D8000303C602F10045000303D802F40087000303C6": "electric-rat",
	"0432009F02E20066000303C602F10045000303D802F40087000303C6": "electric-rat",
	"042F01A40408018F000303B7030C00EA": "i-hate-you",
	"03A202F4018F000303C600060366014D0006037E": "great-job",
	"036C0087000303C3031B00AB03DE000603A202F4018F000303C6": "that-was-great",
	"0309023703FC0213000303C9030C00EA000303C6": "youre-so-cute",
	"03BD00A202F1004803ED0045000303D8": "terrific",
	"037500C9000303BD023703F002F10024": "butterfree",
	"043200C603360006037E02F4005D02E500A8": "ambrella",
	"037B01CE035A0006037B01CE035A": "boing-boing",
	"042F0087000303AB009F02EE": "apple",
	"043200A8000303AB009F02EE": "apple",
	"0426000C0087000303B402EE": "apple",
	"03A202F10021033C0087000303AB009F02EE": "green-apple",
	"0372018F000303D8000303BA0087000303AB009F02EE": "baked-apple",
	"039F020A02EE0006038700A5033C0087000303AB009F02EE": "golden-apple",
	"03A5002400030360": "peach",
	"03FC000303C602FD012C00060372029D0024": "strawberry",
	"03FC000303BD0225012C00060372029D0024": "strawberry",
	"02F4008A03DE00060372029D0024": "raspberry",
	"02F4008A03FC0006037E02F10024": "raspberry",
	"037500A5033C0084033F00A8": "banana",
	"036F0042033C0084033F00C9": "banana",
	"037500C6033C0084033F00A8": "banana",
	"03CC0087000303C6000303BA018602EE": "cattail",
	"032101A702EE00060390040B02340006037E": "wild-herb",
	"03D502D60348": "corn",
	"03B1014D000303B4000303D502D60348": "popcorn",
	"03AB00C60336000303B4000303C900420348": "pumpkin",
	"03AB00C60336000303C900420348": "pumpkin",
	"03AB00C6035A000303CF00A50348": "pumpkin",
	"03C00273033F00A8000303B4": "turnip",
	"03C0027303390045000303B4": "turnip",
	"03CC00870006036F004500060366": "cabbage",
	"03CC008102F700A8000303C6": "carrot",
	"03CC02A300A8000303C6": "carrot",
	"043200C60339030900A50348": "onion",
	"043200A5033F00A50348": "onion",
	"043501080339030900A50348": "onion",
	"03FC031500240006037500C9000303BA018F0006038D0213": "sweet-potato",
	"03FC03150024000303C6000303AB00A8000303C3016E0006038D0213": "sweet-potato",
	"03FC03150024000303B4000303BA018F0006038700A8": "sweet-potato",
	"03FC032A005D02DF002703F002FA00EA000303C6": "smelly-fruit",
	"03FC000303B70045000303C9002703F002FA00EA000303C6": "sticky-fruit",
	"02FD021603FC000303BD00A80006039003F002FA00EA000303C6": "roasted-fruit",
	"0321012302EE033F00A8000303C6": "walnut",
	"03D802F40087000303D50321012302EE033F00A8000303C6": "cracked-walnut",
	"03FC000303B101B0000303C900270402005D02EE": "spiky-shell",
	"03FC000303B101AD033900270402005D02EE": "spiny-shell",
	"0360006903FC033F00A8000303C6": "chestnut",
	"036F002400030360033F00C9000303C6": "beach-nut",
	"03D50213000303CF00A5033F00C9000303C6": "coconut",
	"042C018F000303D502D60348": "acorn",
	"03C3021603FC000303BD00A800060384018F000303D502D60348": "toasted-acorn",
	"03F002EB01950042034E018F000303D502D60348": "flying-acorn",
	"042C018F000303D502D60348000303C3014D000303B4": "acorn-top",
	"036600C603360006037B0216040202FA00E70336": "jumbo-shroom",
	"02FD021603FC000303BD00A8000603900006036600A503360006037B0213": "roasted-jumbo",
	"039002F1002103270027040202FA00E70336": "dreamy-shroom",
	"03C602F700CC03F0009F02EE000303C3014D000303B4": "truffle-top",
	"037E02E800ED040202FA00E70336": "blue-shroom",
	"0411014D000303C6040202FA00E70336": "hot-shroom",
	"02F4006600060390040202FA00E70336": "red-shroom",
	"03FC00C603390027040202FA00E70336": "sunny-shroom",
	"032D00CC040202FA00E70336": "mushroom",
	"0411014D000303C6032D00CC040202FA00E70336": "hot-mushroom",
	"02EB01B0000303C60006037500C002EE0006037E": "light-bulb",
	"02EB01B0000303C600060378010202EE0006037E": "light-bulb",
	"03CF00C9000303B4000303CC018F000303D8": "cupcake",
	"03840174002703DB0024": "daisy",
	"03A50045000303C000E70339030900A8": "petunia",
	"03C000E102E500A8000303B4": "tulip",
	"03C000E102DF0045000303B4": "tulip",
	"03840084034800060387009F02EB019B00A50348": "dandelion",
	"03840084034800060381001B02EB019B00A50348": "dandelion",
	"037E02E800EA00060372005D02EE": "bluebell",
	"03FC000303CF00C60348000303D80006037E02EB015003FC00A50336": "skunk-blossom",
	"03FC00C6034803F002EB01DD0234": "sunflower",
	"02DF003C02DF0024": "lily",
	"02FD021603DE0006037500C900060390": "rose-bud",
	"02F400660006039002FD021603DE": "red-rose",
	"0375009F02E800E70348": "balloon",
	"03B10213000303CC018F00060381004803FC000303D8": "poke-disc",
	"036F0024000303600006037B012302EE": "beach-ball",
	"0321012C000303BD02190042035A000303CC00840348": "watering-can",
	"0321012C000303BD02190042035A0006036600C9000603A2": "watering-jug",
	"0306005D02EB02130006037B012302EE": "yellow-ball",
	"03600255000303D5020A02EE": "charcoal",
	"02DF002703F004110315004803FC009F02EE": "leaf-whistle",
	"041102520333014A03390045000303CF00A8": "harmonica",
	"03C602F700C60336000303A80066": "trumpet",
	"03C602FA01080336000303AB00A8000303C6": "trumpet",
	"037500A5033C0084033F00A8000303A5000F009F02EE": "banana-peel",
	"032A018F0006039900AB03F002100348": "megaphone",
	"039F020A02EE00060390000303D501CE0348": "gold-coin",
	"0360014D000303CF009F02E500A8000303C6000303D501CE0348": "chocolate-coin",
	"0402014D000303D802E500A8000303C6000303D501CE0348": "chocolate-coin",
	"03F9003C02EE03EA0234000303D501CE0348": "silver-coin",
	"03D5014D000303AB0234000303D501CE0348": "copper-coin",
	"02FA00EA0006036F0024": "ruby",
	"03FC008A03F001AA0300": "sapphire",
	"03FC008A03F0019B0234": "sapphire",
	"03C30213000303A8008A03DE": "topaz",
	"02F40066000603900333025500060375009F02EE": "red-marble",
	"037E02E800E70333025500060375009F02EE": "blue-marble",
	"0306005D02EB02100333025500060375009F02EE": "yellow-marble",
	"02FA00EA0006036F001E02F10042035A": "ruby-ring",
	"037B014D00060387009F02EE000303CC0087000303B402F10042035A": "bottle-cap-ring",
	"03B101AA02F700A8000303C603FC02D900060390": "pirate-sword",
	"03B101AA02F10045000303C603FC02D900060390": "pirate-sword",
	"03C301D403FC0126030000060390": "toy-sword",
	"037502340006039003F00069036C0234": "bird-feather",
	"037B020A02EE000303C6": "bolt",
	"032A0087000603A203390045000303C6": "magnet",
	"032A018F000603A203390045000303C6": "magnet",
	"0333025500060375009F02EE": "marble",
	"03D802F4018F000303C6": "crate",
	"03D50255000603900006037B02D9000603900006037B014D000303D803FC": "cardboard-box",
	"03CF00A503360405000F0234": "come-here",
	"043B021603EA022804050297": "over-here",
	"040B009F02EB0213": "hello",
	"039C010B00060390034501950024000303C6": "good-night",
	"039900A5034501B0000303C6": "good-night",
	"03F6018C035A000303C9030C00EA": "thank-you",
	"038A00ED03FC00C6033603F30042035A": "do-something",
	"02DF004803FC00A50348000303BD00A503270024": "listen-to-me",
	"03A500090024000303CF00A8": "pi-ka",
	"039F0213000603930045000303BD00A8000303C6": "go-get-it",
	"036C0087000303C603FC03F001AD0348": "thats-fine",
	"043B0213000303CC01740024": "ok",
	"04020276": "sure",
	"02FD01B0000303C6": "right",
	"02E2006903FC0006038A00ED036C0087000303C6": "lets-do-that",
	"0345014D000303C6036C0087000303C3031B00C60348": "not-that-one",
	"036C0087000303C603DE02FD0129035A": "thats-wrong",
	"0372008700060390000303B10213000303CC018C0333014A0348": "bad-pokemon",
	"038D02100348000303C60006038A00ED036C0087000303C6": "dont-do-that",
	"042900420348000303CF021C0066000303D8000303C6": "incorrect",
	"03CF00C9000303BD00A8000303C301F2000303C6": "cut-it-out",
	"03450213": "no",
	"0318018F0006038700A80006039F0213": "way-to-go",
	"03F002EB01DD0234": "flower",
	"038400840348000303C603FC": "dance",
	"03F602FD01F80045000303C6": "throw-it",
	"03C3015003F90045000303C6": "toss-it",
	"030C00EA000303CC008403390024000303C6036C0087000303C6": "you-can-eat-that",
	"03BA019203FC000303B70045000303C6": "taste-it",
	"041101F503DB0045000303C6000303BA019203FC000303C6": "hows-it-taste?",
	"041101F503DB0045000303C603FC032A005D02EE": "hows-it-smell?",
	"041101F503DB0045000303C603FC01EF034800060390": "hows-it-sound?",
	"0411031B00A8000303C60006038700AB03DB0045000303C60006038A00EA": "what-does-it-do?",
	"03B402E201830411031B00A8000303C6": "play-what?",
	"03C602FD01950045000303C6": "try-it",
	"03B402E201740045000303C6": "play-it",
	"039002FD014D000303A50045000303C6": "drop-it",
	"03A80066000303CF00A80003036000EA": "pikachu",
	"030C00EA000303CC00840348000303BA019203FC000303B70045000303C6": "you-can-taste-it",
	"041101F503DB0045000303C603FC01EF0348": "hows-it-sound?",
	"03AE010B000303C6036C0087000303C6000603720087000303D8": "put-that-back",
	"03FC000303BA018003150048036C03270024": "stay-with-me",
	"03FC000303BA01770087000303C6033301A4041101F503FC": "stay-at-my-house",
	"03F90009030C00E102E2018F000303BD0234": "see-you-later",
	"03F90009030C00EA": "see-you",
	"037B01B0": "bye",
	"0411031B00A8000303BD0219030900A80006038A00CF0042035A": "what-are-you-doing?",
	"0411031B00A8000303C603FC00C9000303B4": "whats-up?",
	"0411031B00A8000303C603FC00C9000303B4036C02B8": "whats-up-there?",
	"033C006903EA0231033301AD034800060390": "never-mind",
	"039C010B00060390034501B0000303C6": "good-night",
	"03F60084035A000303C9030C00EA": "thank-you",
	"04290045000303C603DE02F700C603390042035100990318018F": "its-running-away",
	"03F002EB01DD02340006037500C900060390": "flower-bud",
	"03BA008700060393030902190045000303C6": "tag-youre-it",
	"039F01FE00BA0318018F": "go-away",
	"02E8010B000303D5021603EA0237036C02B8": "look-over-there",
	"04290045000303C603FC021603EA0237036C02B8": "its-over-there",
	"03FC000303CF00C60348000303D80006037E02EB015003FC014A0336": "skunk-blossom",
	"03FC000303C602FD016E00060372029D0024": "strawberry",
	"02F4008A03FC000303B402F10024": "raspberry",
	"0438012C0006038100480402": "oddish",
	"03A202E800E70336": "gloom",
	"03EA01A702EE000303B402E800E70336": "vileplume",
	"042F01AD033603FC02BE0024": "im-sorry",
	"03FC02BE0024": "sorry",
	"03CC0084033F00A50348": "cannon",
	"03810045000603930045000303C301F2000303C6": "dig-it-out",
	"03810045000603A2036C017A0234": "dig-there",
	"03810045000603A2": "dig",
	"03AE010202EE": "pull",
	"033F00C9000303C6": "nut",
	"03780108033C0084033F00C9": "banana",
	"03C602F4006903E4023400030360006903FC000303C6": "treasure-chest",
	"03C602F4006903E40234": "treasure",
	"0372029D002400060390000303C602F4006903E40234": "buried-treasure",
	"0408005D02EB0213": "hello",
	"042F01A702E500CC03E7030C00EA": "i-love-you",
	"04080084035701290348": "hang-on",
	"03C602F40066000603660234": "treasure",
	"03960066000303C602EB015003FC000303C6": "get-lost",
	"03A50024000303CF00BD040B00A8": "pikka",
	"03A500090024000303CF00C9": "pi-ka",
	"0375009C041101AD034800060381030C00EA": "behind-you",
	"036F0018041101AD03480006036600EA": "behind-you",
	"041101EF032A006303390024": "how-many?",
	"041101EF032A0063033900150258036C02B8": "how-many-are-there?",
	"03B1020A02DF001503180087000603A2": "poliwag",
	"03B1014402DF001503180087000603A2": "poliwag",
	"03B1020A02DF0015031B022B02EE": "poliwhirl",
	"03FC000303D5031B0234000303BD009F02EE": "squirtle",
	"0396008A03FC000303C602DF0024": "gastly",
	"041101290348000303BD0234": "haunter",
	"02FD0129035A": "wrong",
	"03D503150045000303C6": "quit",
	"03CF00C9000303B700450006038D01F2000303C6": "cut-it-out",
	"03CF00A503270297": "c-mere",
	"03CF00A5033604050297": "come-here",
	"02E8010B000303D5021603EA022804050297": "look-over-here",
	"02E8010B000303D501F2000303C6": "look-out",
	"0321012C0003036001F2000303C6": "watch-out",
	"036C02B8": "there",
	"03FC03150042035A034501F2": "swing-now",
	"03FC03150042035A": "swing",
	"039F020D02FD01B0000303C6": "go-right",
	"03F00258036C022E02FD01B0000303C6": "farther-right",
	"039F020A02E2006903F0000303C6": "go-left",
	"02E2006903F0000303C6": "left",
	"03F00258036C022B02E2006903F0000303C6": "farther-left",
	"03FC000303C3014D000303B4": "stop",
	"03FC000303C3014D000303B4034501F2": "stop-now",
	"03FC000303C3014D000303B4036C02B8": "stop-there",
	"03FC000303A50042033F00A202FD01EF034800060390": "spin-around",
	"02FD012903570318018F": "wrong-way",
	"03BD0231033F00A202FD01EF034800060390": "turn-around",
	"03720087000303CF00C9000303B4": "back-up",
	"03C90024000303B40006039F01F80042035A": "keep-going",
	"03FC000303C602F4018F00060387009C0408006600060390": "straight-ahead",
	"037500C002EE0006037500AB03FC02D9": "bulbasaur",
	"03E70021033F00AB03FC02D9": "venusaur",
	"03FC02EB0213000303B10213000303D8": "slowpoke",
	"03600252032A00840348000603870234": "charmander",
	"03C903060087000303BD0234000303A50024": "caterpie",
	"02EB014D000303B402F700AB03FC": "lapras",
	"02E20087000303B402F700AB03FC": "lapras",
	"03C302130006039900A8000303A50024": "togepi",
	"03C30213000603930045000303A500090024": "togepi",
	"03A500420339030F012C0006038700A8": "pinata",
	"03A500210339030F014D000303BD00A8": "pinata",
	"02DF004803F900420348000303BD00A503270024": "listen-to-me",
	"03F002FA00EA000303C6": "fruit",
	"03450213000303C6000303A8008700060390": "notepad",
	"042900420348000603A202F1002400060381000F00A50348000303C603FC": "ingredients",
	"02F4006903FC00A8000303A50024": "recipe",
	"02F4006903F90045000303A50024": "recipe",
	"0411014D000303C603FC03150024000303AB00C9000303BA018F0006038D0213": "hot-sweet-potato",
	"0411014D000303C603FC03150024000303B4000303BA018F0006038D0213": "hot-sweet-potato",
	"03D200E102EE": "cool",
	"03F001AD0348": "fine",
	"03FC000303C000EA000303A5004500060390": "stupid",
	"02E20066000303C603FC000303B402E2018F": "lets-play",
	"039C0108033302D603390042035A": "good-morning",
	"0318018F000303CF00C9000303B4": "wake-up",
	"03960066000303BD00C9000303B4": "get-up",
	"04260024000303CF00A5034803DE": "ekans",
	"042C0066000303CF00A5034803DE": "ekans",
	"037E02F10042034B0045000303C604050297": "bring-it-here",
	"030C00EA000303CF00A503390024000303C6036C0087000303C6": "you-can-eat-that",
	"03BA019203FC000303BD00A8000303C6": "taste-it",
	"04260024000303B70045000303C6": "eat-it",
	"032A0087000603A2033F00A8000303C6": "magnet",
	"03D501CE0348": "coin",
	"036600D5009F02EE": "jewel",
	"03B101AA02F10045000303C603FC01": "pirate-sword",
	"039C0108034501B0000303C6": "good-night",
	"03D50315004803DE000303C301AD0336": "quiz-time",
	"03B7002703E70024": "tv",
	"042F01B0000303D503150045000303C6": "i-quit",
	"042F01AD03360006038700C60348": "im-done",
	"030C00EA000303CF00A50348000303B402E2018F": "you-can-play",
	"03150024000303CF00A50348000303B402E2018F": "we-can-play",
	"0372008700060390": "bad",
	"0345014D000303C90045000303C3012F03F0": "knock-it-off",
	"03450213000303B402E201740042035A": "no-playing",
	"03FC000303C3014D000303B4000303B402E201740042035A": "stop-playing",
	"042F01AD03360345014D000303C6000303B402E201740042035A": "im-not-playing",
	"03FC000303C3014D000303B4036C0087000303C6": "stop-that",
	"03D802DF002103390045000303BD00C9000303B4": "clean-it-up",
	"03AE010B000303B70045000303BD00990318018F": "put-it-away",
	"03D802DF0021033F00C9000303B4": "clean-up",
	"03D802DF00210348036C0087000303BD00C9000303B4": "clean-that-up",
	"03B70048040200EA": "tissue",
	"042F01B303E7002703FC02D9": "ivysaur",
	"042F01B303EA00AB03FC02D9": "ivysaur",
	"036002520327001B02DF0009030900A50348": "charmeleon",
	"0360025803DE025500060390": "charizard",
	"0360024000AB03DE025500060390": "charizard",
	"03210255000303BD0234000303BD009F02EE": "wartortle",
	"03210255000303C302D9000303BD009F02EE": "wartortle",
	"037E02E2008A03FC000303C301D403FC": "blastoise",
	"03CC0087000303BD0234000303A50024": "caterpie",
	"032A0066000303BD00A8000303B1014D00060390": "metapod",
	"0315002400060387009F02EE": "weedle",
	"03D2010B000303D200E7033F00A8": "kakuna",
	"03C90045000303D200E7033F00A8": "kakuna",
	"036F00240006039002F1003C02EE": "beedrill",
	"036F00240006039002F7009F02EE": "beedrill",
	"03A5004500060366014D000303C6": "pidgeot",
	"02F40087000303BD00A8000303BD00A8": "rattata",
	"02F700A8000303BA00870006038700A8": "rattata",
	"02F40087000303BA00870006038700A8": "rattata",
	"02F40087000303B70045000303CC018F000303C6": "raticate",
	"03FC000303A502880213": "spearow",
	"03ED02880213": "fearow",
	"043802550006037B014D000303D8": "arbok",
	"02FD01B00003036000EA": "raichu",
	"03FC00840348040202FA00EA": "sandshrew",
	"03FC0084034803FC02E2008A0402": "sandslash",
	"0339004500060387021F00A5034803ED0021032A018602EE": "nidoran-female",
	"033900450006038D020D02F700A5034803ED0021032A017A009F02EE": "nidoran-female",
	"033900450006038702190021033F00A8": "nidorina",
	"033900240006038D0213000303D5031500210348": "nidoqueen",
	"033900450006038D020D02F700A50348032A018602EE": "nidoran-male",
	"0339004500060387021F00A50348032A017A009F02EE": "nidoran-male",
	"033900450006038D02BE002103450213": "nidorino",
	"033900240006038D020D02F1002103450213": "nidorino",
	"033900240006038D0213000303C90042035A": "nidoking",
	"03D802E2006903F0008102F10024": "clefairy",
	"03D802E500AB03F0008102F10024": "clefairy",
	"03D802E2006903F0018F00060375009F02EE": "clefable",
	"03D802E500AB03F0018F00060375009F02EE": "clefable",
	"03EA009F02EE000303A50045000303D803FC": "vulpix",
	"034501AD0348000303BA018602EE03DE": "ninetales",
	"03630045000603A202DF0024000303AB00CC03F0": "jigglypuff",
	"0363004500060399009F02DF0024000303AB00CC03F0": "jigglypuff",
	"03150045000603A202DF0024000303BD00CC03F0": "wigglytuff",
	"03DE00EA000603720087000303C6": "zubat",
	"039F020A02EE000603720087000303C6": "golbat",
	"03B1024000AB03FC": "paras",
	"03A802A300AB03FC": "paras",
	"03B1024000AB03FC0066000303D8000303C6": "parasect",
	"03A802A300AB03FC0066000303D8000303C6": "parasect",
	"03EA006303450210033C0087000303C6": "venonat",
	"03EA0063034502100333012F03F6": "venomoth",
	"03810045000603A202E500A8000303C6": "diglett",
	"0327001501F503F6": "meowth",
	"03AB023703E400A50348": "persian",
	"03FC01B00006038700C9000303D8": "psyduck",
	"039C010202EE0006038700C9000303D8": "golduck",
	"032A0084035A000303C90024": "mankey",
	"03B402FD01AD032A018F000303B4": "primeape",
	"03A202FD020A02EB01B3036C": "growlithe",
	"03A202FD01E902DF0048036C": "growlithe",
	"04380255000303CC018C034501AD0348": "arcanine",
	"04380255000303CF00A5034501AD0348": "arcanine",
	"03B1020A02DF001E02F4008A03F6": "poliwrath",
	"03B1014402DF001E02F4008A03F6": "poliwrath",
	"042F00870006037E02F700A8": "abra",
	"03CF00A80006038400870006037E02F700A8": "kadabra",
	"042F007E02E500A8000303CF00AB03DE00840336": "alakazam",
	"032D00A800030360014D000303B4": "machop",
	"032D00A8000303600213000303D8": "machoke",
	"032D00A80003036000840336000303B4": "machamp",
	"0372005D02EE03FC000303B402FD01F2000303C6": "bellsprout",
	"03BA0063033F00A8000303CF00C002EE": "tentacool",
	"03BA0063033F00A8000303D802FA00E102EE": "tentacruel",
	"03630009030F02130006038A00EA00060390": "geodude",
	"03A202F4008A03EA009F02E50234": "graveler",
	"03A202F4008A03EA02E50234": "graveler",
	"039F020A02E500A50336": "golem",
	"039F014402EE0336": "golem",
	"03B1021003390024000303BD00A8": "ponyta",
	"03B1021003390024000303C3016E": "ponyta",
	"02F40087000303A5004500060384008A0402": "rapidash",
	"03FC02EB02130006037E02FD0213": "slowbro",
	"032A0087000603A2033F00A5033301B0000303C6": "magnemite",
	"032A0087000603A2033F00A8000303C3014A0348": "magneton",
	"0008": "farfetch",
	"038D02130006039002F100150213": "dodrio",
	"03F9001B02EE": "seel",
	"038A00EA0006039F014A035A": "dewgong",
	"038A00EA0006039F014A0348": "dewgong",
	"03A202FD01AD032D0234": "grimer",
	"032D00C9000303D8": "muk",
	"0402005D02EE000603870234": "shellder",
	"03D802EB01D403FC000303BD0234": "cloyster",
	"0396008A03FC000303C602DF00": "gastly",
	"0396008A03FC02DF0024": "gastly",
	"03960084035A0006039F0255": "gengar",
	"0396006303480006039F0255": "gengar",
	"0438014A03390045000303D803FC": "onix",
	"039002FD01F503DB0024": "drowzee",
	"039002FD021603DB0024": "drowzee",
	"04050045000303B403450213": "hypno",
	"03D802F400870006036F00": "krabby",
	"03C90042035A02E50234": "kingler",
	"03EA020A02EE000303C302D90006037E": "voltorb",
	"0426001B02E20066000303D8000303C602FD021300060390": "electrode",
	"0432009F02E20066000303D8000303C602FD021300060390": "electrode",
	"042C0066000603A203DE000303C9030C00EA000303C6": "exeggcute",
	"042C0066000603A203DE0066000303C9030C00EA000303C302D9": "exeggutor",
	"042C0066000603A203FC00A8000303C9030C00EA000603870234": "exeggutor",
	"03C9030C00EA0006037B02100348": "cubone",
	"032A02A9020403180087000303D8": "marowak",
	"03330246020403180087000303D8": "marowak",
	"04050045000303C603330210034802DF0024": "hitmonlee",
	"04050045000303C60333014A034802DF0024": "hitmonlee",
	"04050045000303C60333021003480003036000840348": "hitmonchan",
	"02DF0045000303C90024000303BD00A5035A": "lickitung",
	"02DF0045000303C90045000303BD00A5035A": "lickitung",
	"02DF0045000303C90045000303C00108035A": "lickitung",
	"03D5015003ED0042035A": "koffing",
	"0315002703DB0042035A": "weezing",
	"02FD01A4041102D60348": "rhyhorn",
	"02FD01B00006038D01290348": "rhydon",
	"03600084034803F90024": "chansey",
	"03BA0084034800060366005D02E500A8": "tangela",
	"03BA018C034800060396005D02E500A8": "tangela",
	"03CC018C035A0006039900AB03FC000303D5014A0348": "kangaskhan",
	"041102DC03F90024": "horsea",
	"03F900240006039002F700A8": "seadra",
	"039F020A02EE0006038100210348": "goldeen",
	"03F90024000303C90042035A": "seaking",
	"03FC000303C3023A030C00EA": "staryu",
	"03FC000303C3025203270024": "starmie",
	"0327004803FC000303BD0231033301AD0336": "mr.mime",
	"03FC01B3036C0234": "scyther",
	"03630042035A000303D803FC": "jynx",
	"0426001B02E20066000303D8000303BD00A80006037500CC03DE": "electabuzz",
	"0432009F02E20066000303D8000303BD00A80006037500CC03DE": "electabuzz",
	"032A0087000603A203330255": "magmar",
	"03A50042034803FC0234": "pinsir",
	"03C3020D02FD012F03FC": "tauros",
	"03C30246021603FC": "tauros",
	"032A0087000603630045000303D50255000303B4": "magikarp",
	"039602A300A80006038D015003FC": "gyarados",
	"039602A300A80006038D021603FC": "gyarados",
	"03810045000303C30213": "ditto",
	"0426002703E70024": "eevee",
	"03EA018F000303B102BE0015014A0348": "vaporeon",
	"03EA00A8000303B102BE000F00A50348": "vaporeon",
	"0366020A02EE000303B70015014A0348": "jolteon",
	"03F002E2029D0015014A0348": "flareon",
	"03B1020D02F100240006039F014A0348": "porygon",
	"03B1020D02F100240006039900A50348": "porygon",
	"043B0210032D00C6034501B0000303C6": "omanyte",
	"04380129032D00A5034501B0000303C6": "omanyte",
	"043B0210032D00CC03FC000303C30255": "omastar",
	"04380129032D00AB03FC000303C30255": "omastar",
	"03CF00C90006037800EA0006038D0213": "kabuto",
	"03D5012C0006037800EA000303C3014D000303B403FC": "kabutops",
	"03D5012C0006037500A8000303C3014D000303B403FC": "kabutops",
	"03D5012C0006037500A8000303C3015003FC": "kabutops",
	"042C02A90213000603840087000303D8000303BD00C002EE": "aerodactyl",
	"03FC034502D002E20087000303D803FC": "snorlax",
	"04380255000303B70045000303D200E703450213": "articuno",
	"03DE0087000303B40006038D015003FC": "zapdos",
	"03DE0087000303B40006038D021603FC": "zapdos",
	"0333020A02EE000303C602F4006903FC": "moltres",
	"039002F700A8000303B7002103390024": "dratini",
	"039002F400870006039900A5033C02B8": "dragonair",
	"039002F400870006039900A5034501B0000303C6": "dragonite",
	"0327030C00EA000303C000EA": "mewtwo",
	"0327030C00EA": "mew",
	"03C3014D000303AB00AB03EA000603630045000603A202DF0024000303AB00AB03F0": "top-of-jigglypuff",
	"03C302130006039C010B000303A50024": "togepi",
	"03150024000303A50042034800060372005D02EE": "weepinbell",
	"03E70045000303D8000303C602F1002400060372005D02EE": "victreebel",
	"03BA0063033F00A8000303D200E102EE": "tentacool",
	"038700C9000603A2000303C602F100150213": "dugtrio",
	"03A50045000603630024": "pidgey",
	"038D02130006038A00DB0213": "doduo",
	"03A50045000603660213000303C30213": "pidgeotto",
	"03CF00C9000303D200E7033F00A8": "kakuna",
	"03BA00630348000303BD00A8000303D200E102EE": "tentacool",
	"03CC018C035A00060396008A03FC000303D5014A0348": "kangaskhan",
	"043B0210032D00AB03FC000303C30255": "omastar",
	"03CF00A80006037800EA000303C3014D000303B403FC": "kabutops",
	"036C0087000303C603FC02FD01B0000303C6": "thats-right",
	"036C0087000303C603FC0006039C010B00060390": "thats-good",
	"036C0087000303C3031B00C60348": "that-one",
	"036C008A03FC03F001AD0348": "thats-fine",
	"036C0087000303C603DE03F001AD0348": "thats-fine",
	"03CF021C0066000303D8000303C6": "correct",
	"03CF00A202F40066000303D8000303C6": "correct",
	"036F0042035A0006039F0213": "bingo",
	"03D5012302DF0045000303C6": "call-it",
	"0372008700060390000303A50024000303CF00A80003036000EA": "bad-pikachu",
	"0327004803FC": "miss",
	"038D02100348000303C6000303D5012302DF0045000303C6": "dont-call-it",
	"041101F503FC": "house",
	"041102100336": "home",
	"03EA00A202F1004500060381000F00C60348": "viridian",
	"03EA00A202F1004500060381000F00C6034803F002C400AB03FC000303C6": "viridian-forest",
	"043B0213000303CF0234": "ochre",
	"043B0213000303CF0225031E010B0006039003DE": "ochre-woods",
	"043B0213000303CF023703ED004803FF0042035A0411020A02EE": "ochre-fishing-hole",
	"03FC000303B402F10042035A02DF002703F0": "springleaf",
	"03FC000303B402F10042035A02DF002703F003ED000F00C002EE00060390": "springleaf-field",
	"0438014402E500AB03EA01AD0348": "olivine",
	"0438014402E500AB03EA01AD034802E2018F000303D8": "olivine-lake",
	"0438014402E500AB03EA01AD034803ED004803FF0042035A0411020A02EE": "olivine-fishing-hole",
	"03D502130006037B012302EE000303C6": "cobalt",
	"03D502130006037B012302EE000303C301A702E500C6034800060390": "cobalt-island",
	"03D502130006037E03ED004803FF0042035A0411020A02EE": "cobalt-fishing-hole",
	"03D5021603FC000303C6": "coast",
	"03D502130006037B012302EE000303C6000303D5021603FC000303C6": "cobalt-coast",
	"03FC000303A80069040200C002EE000303C602F4018C03390042035A": "special-training",
	"03BD0231033F00A8000303B4": "turnip",
	"03BD02310348000303B4": "turnip",
	"03FC03150024000303C6000303AB00A8000303BA018F0006038D0213": "sweet-potato",
	"03D501470300000603900006037B02D9000603900006037B014D000303D803FC": "cardboard-box",
	"04080084034B00420348036C02B8": "hang-in-there",
	"02F1001B02DF0045000303B700420348": "reel-it-in",
	"034501F2": "now",
	"03CC00870003035D0045000303C6": "catch-it",
	"03960066000303B70045000303C6": "get-it",
	"03AE010202DF0045000303C6": "pull-it",
	"03AE010202EE04110255000603870234": "pull-harder",
	"02E20066000303B70045000303C60006039F0213": "let-it-go",
	"02F1003C02DF002703F90045000303C6": "release-it",
	"02E500C6034800030360": "lunch",
	"03FC033C0087000303D8": "snack",
	"02E2006903F90024000303C6": "lets-eat",
	"042F019B00C6034800060387023703FC000303BA0084034800060390": "i-understand",
	"042F01B0000603930045000303B70045000303C6": "i-get-it",
	"0411032101B0": "why?",
	"041101F2000303CF00C60336": "how-come?",
	"039C010B0006037B01B0": "good-bye",
	"03BA018F000303D8000303CC02B8": "take-care",
	"042F019B009F02EE0327004803F9030C00EA": "ill-miss-you",
	"0438016502EE0327004803F9030C00EA": "ill-miss-you",
	"03CF00C9000303B70045000303C301F2000303C6": "cut-it-out",
	"03CF00A503330129034802E20066000303C603DE0006039F0213": "c-mon-lets-go",
	"02E20066000303C603DE0006039F0213": "lets-go",
	"031B0225012F03F0": "we-re-off",
	"0411031B00A8000303C603FC02FD0129035A": "whats-wrong?",
	"0411031B00A8000303B7004803F90045000303C6": "what-is-it?",
	"03CF00C603330129034802E20066000303C603DE0006039F0213": "c-mon-lets-go!",
	"031502970006039F01F80042035A034501F2": "were-going-now",
	"02E20066000303C603FC000303600066000303C90045000303C301F2000303C6": "lets-check-it-out",
	"03F600C6033F02370402014D000303D8": "thundershock",
	"03F600C6033F02340006037B020A02EE000303C6": "thunderbolt",
	"043801290339030300420348": "onion",
	"03FC02DF0024000303B4000303C301B0000303C6": "sleep-tight",
	"03F90009030C00EA000303C000E7033302460213": "see-you-tomorrow",
	"03F90009030C00CF00420348036C00C6033302D603390042035A": "see-you-in-the-morning",
	"039F0213000303BD00C6033302460213": "go-tomorrow",
	"02FD014D000303D8": "rock",
	"03F9004803DE023703FC": "scissors",
	"03A8018F000303AB0234": "paper",
	"0381002A000303B10255000303C6": "depart",
	"02F10006038100EA03DE00030384002A000303B10255000303C6": "reduced-depart",
	"03D5012F035D0063034800030381002A000303B10255000303C6": "caution-depart",
	"02DF03FC03BD023A000603D8000303B700060381002A000303B10255000303C6": "restricted-depart",
	"03B1008A03FC0042035A": "passing",
	"03FC000303C3014D000303AB0042035A": "stopping",
	"031E02DC03390042035A": "warning",
	"03AB02FA021603F9000900060390": "proceed",
	"02F10006038100EA03DE00060390": "reduced",
	"03D5012F035D00630348": "caution",
	"02DF03FC03BD023A000603D8000303B700060390": "restricted",
	"042C0066000603A203FC000303AB021C005A03DE": "express",
	"02E50042032A002A000303C6": "limit",
	"03450213000602E50042032A002A000303C6": "no-limit",
	"03B7005A0348": "ten",
	"03E7002A03F6000303B700090348": "fifteen",
	"03C30318004B0339038A0024": "twenty",
	"03C30318004B0339038A002403EA019E03EA": "twenty-five",
	"036C02AC03BA0027": "thirty",
	"036C02AC03BA002703EA019E03EA": "thirty-five",
	"03EA02D6000603900048": "forty",
	"03EA02D600060390004803EA019E03EA": "forty-five",
	"03F3005A03F0000303B70042": "fifty",
	"03F3005A03F0000303B7004203EA019E03EA": "fifty-five",
	"03F9002A000303D803FC000303C00009": "sixty",
	"03F9002A000303D803FC000303C0000903EA019E03EA": "sixty-five",
	"03FC004B036C00630348000303B70009": "seventy",
	"03FC004B036C00630348000303B7000903EA019E03EA": "seventy-five",
	"042C018C03B70009": "eighty",
	"042C018C03B7000903EA019E03EA": "eighty-five",
	"034501A103480006038A0048": "ninety",
	"034501A103480006038A004803EA019E03EA": "ninety-five",
	"031B00C60348040B00BD0348038702F100060390": "one-hundred",
	"031B00C60348021303F001AD03E7": "one-oh-five",
	"031B00C60348000303B7005A0348": "one-ten",
	"031B00C60348000303E7002A03F6000303B700090348": "one-fifteen",
	"031B00C60348000303C303180348000303B70024": "one-twenty",
	"031B00C60348000303C303180348000303B7002403EA019E03EA": "one-twenty-five",
	"82B582E382C182CF82C282B582F182B182A4": "depart",
	"82B582E382C182CF82C282B082F182BB82AD": "reduced-depart",
	"82B582E382C182CF82C282BF82E382A482A2": "caution-depart",
	"82B582E382C182CF82C282AF82A282A982A2": "restricted-depart",
}
