package registry

import "github.com/worldmonitor/newsdigest/pkg/domain"

// built-in feed tables, one entry per variant. Feeds without a lang are
// served to every language; the rest only when the request matches.
var variantFeeds = map[string]map[string][]domain.Feed{
	"full": {
		"politics": {
			{Name: "BBC World", URL: "https://feeds.bbci.co.uk/news/world/rss.xml"},
			{Name: "Guardian World", URL: "https://www.theguardian.com/world/rss"},
			{Name: "AP News", URL: gn("site:apnews.com")},
			{Name: "Reuters World", URL: gn("site:reuters.com world")},
			{Name: "CNN World", URL: gn("site:cnn.com world news when:1d")},
		},
		"us": {
			{Name: "NPR News", URL: "https://feeds.npr.org/1001/rss.xml"},
			{Name: "Politico", URL: gn("site:politico.com when:1d")},
			{Name: "Axios", URL: "https://api.axios.com/feed/"},
		},
		"europe": {
			{Name: "France 24", URL: "https://www.france24.com/en/rss"},
			{Name: "EuroNews", URL: "https://www.euronews.com/rss?format=xml"},
			{Name: "Le Monde", URL: "https://www.lemonde.fr/en/rss/une.xml"},
			{Name: "DW News", URL: "https://rss.dw.com/xml/rss-en-all"},
		},
		"middleeast": {
			{Name: "BBC Middle East", URL: "https://feeds.bbci.co.uk/news/world/middle_east/rss.xml"},
			{Name: "Al Jazeera", URL: "https://www.aljazeera.com/xml/rss/all.xml"},
			{Name: "Guardian ME", URL: "https://www.theguardian.com/world/middleeast/rss"},
			{Name: "Oman Observer", URL: "https://www.omanobserver.om/rssFeed/1"},
		},
		"tech": {
			{Name: "Hacker News", URL: "https://hnrss.org/frontpage"},
			{Name: "Ars Technica", URL: "https://feeds.arstechnica.com/arstechnica/technology-lab"},
			{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml"},
			{Name: "MIT Tech Review", URL: "https://www.technologyreview.com/feed/"},
		},
		"ai": {
			{Name: "AI News", URL: gn(`(OpenAI OR Anthropic OR Google AI OR "large language model" OR ChatGPT) when:2d`)},
			{Name: "VentureBeat AI", URL: "https://venturebeat.com/category/ai/feed/"},
			{Name: "The Verge AI", URL: "https://www.theverge.com/rss/ai-artificial-intelligence/index.xml"},
			{Name: "MIT Tech Review", URL: "https://www.technologyreview.com/topic/artificial-intelligence/feed"},
			{Name: "ArXiv AI", URL: "https://export.arxiv.org/rss/cs.AI"},
		},
		"finance": {
			{Name: "CNBC", URL: "https://www.cnbc.com/id/100003114/device/rss/rss.html"},
			{Name: "MarketWatch", URL: gn("site:marketwatch.com markets when:1d")},
			{Name: "Yahoo Finance", URL: "https://finance.yahoo.com/news/rssindex"},
			{Name: "Financial Times", URL: "https://www.ft.com/rss/home"},
			{Name: "Reuters Business", URL: gn("site:reuters.com business markets")},
		},
		"gov": {
			{Name: "White House", URL: gn("site:whitehouse.gov")},
			{Name: "State Dept", URL: gn(`site:state.gov OR "State Department"`)},
			{Name: "Pentagon", URL: gn("site:defense.gov OR Pentagon")},
			{Name: "Federal Reserve", URL: "https://www.federalreserve.gov/feeds/press_all.xml"},
			{Name: "SEC", URL: "https://www.sec.gov/news/pressreleases.rss"},
			{Name: "UN News", URL: "https://news.un.org/feed/subscribe/en/news/all/rss.xml"},
			{Name: "CISA", URL: "https://www.cisa.gov/cybersecurity-advisories/all.xml"},
		},
		"africa": {
			{Name: "BBC Africa", URL: "https://feeds.bbci.co.uk/news/world/africa/rss.xml"},
			{Name: "News24", URL: "https://feeds.news24.com/articles/news24/TopStories/rss"},
		},
		"latam": {
			{Name: "BBC Latin America", URL: "https://feeds.bbci.co.uk/news/world/latin_america/rss.xml"},
			{Name: "Guardian Americas", URL: "https://www.theguardian.com/world/americas/rss"},
		},
		"asia": {
			{Name: "BBC Asia", URL: "https://feeds.bbci.co.uk/news/world/asia/rss.xml"},
			{Name: "The Diplomat", URL: "https://thediplomat.com/feed/"},
			{Name: "Nikkei Asia", URL: gn("site:asia.nikkei.com when:3d")},
			{Name: "CNA", URL: "https://www.channelnewsasia.com/api/v1/rss-outbound-feed?_format=xml"},
			{Name: "NDTV", URL: "https://feeds.feedburner.com/ndtvnews-top-stories"},
		},
		"energy": {
			{Name: "Oil & Gas", URL: gn(`(oil price OR OPEC OR "natural gas" OR pipeline OR LNG) when:2d`)},
		},
		"thinktanks": {
			{Name: "Foreign Policy", URL: "https://foreignpolicy.com/feed/"},
			{Name: "Atlantic Council", URL: "https://www.atlanticcouncil.org/feed/"},
			{Name: "Foreign Affairs", URL: "https://www.foreignaffairs.com/rss.xml"},
		},
		"crisis": {
			{Name: "CrisisWatch", URL: "https://www.crisisgroup.org/rss"},
			{Name: "IAEA", URL: "https://www.iaea.org/feeds/topnews"},
			{Name: "WHO", URL: "https://www.who.int/rss-feeds/news-english.xml"},
		},
		"layoffs": {
			{Name: "TechCrunch Layoffs", URL: "https://techcrunch.com/tag/layoffs/feed/"},
		},
	},

	"tech": {
		"tech": {
			{Name: "TechCrunch", URL: "https://techcrunch.com/feed/"},
			{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml"},
			{Name: "Ars Technica", URL: "https://feeds.arstechnica.com/arstechnica/technology-lab"},
			{Name: "Hacker News", URL: "https://hnrss.org/frontpage"},
		},
		"ai": {
			{Name: "AI News", URL: gn(`(OpenAI OR Anthropic OR Google AI OR "large language model" OR ChatGPT) when:2d`)},
			{Name: "VentureBeat AI", URL: "https://venturebeat.com/category/ai/feed/"},
			{Name: "The Verge AI", URL: "https://www.theverge.com/rss/ai-artificial-intelligence/index.xml"},
			{Name: "ArXiv AI", URL: "https://export.arxiv.org/rss/cs.AI"},
		},
		"startups": {
			{Name: "TechCrunch Startups", URL: "https://techcrunch.com/category/startups/feed/"},
			{Name: "VentureBeat", URL: "https://venturebeat.com/feed/"},
			{Name: "Crunchbase News", URL: "https://news.crunchbase.com/feed/"},
		},
		"security": {
			{Name: "Krebs Security", URL: "https://krebsonsecurity.com/feed/"},
			{Name: "Dark Reading", URL: "https://www.darkreading.com/rss.xml"},
		},
		"github": {
			{Name: "GitHub Blog", URL: "https://github.blog/feed/"},
		},
		"funding": {
			{Name: "VC News", URL: gn(`("Series A" OR "Series B" OR "Series C" OR "venture capital" OR "funding round") when:2d`)},
		},
		"cloud": {
			{Name: "InfoQ", URL: "https://feed.infoq.com/"},
			{Name: "The New Stack", URL: "https://thenewstack.io/feed/"},
		},
		"layoffs": {
			{Name: "TechCrunch Layoffs", URL: "https://techcrunch.com/tag/layoffs/feed/"},
		},
		"finance": {
			{Name: "CNBC Tech", URL: "https://www.cnbc.com/id/19854910/device/rss/rss.html"},
			{Name: "Yahoo Finance", URL: "https://finance.yahoo.com/rss/topstories"},
		},
	},

	"finance": {
		"markets": {
			{Name: "CNBC", URL: "https://www.cnbc.com/id/100003114/device/rss/rss.html"},
			{Name: "Yahoo Finance", URL: "https://finance.yahoo.com/rss/topstories"},
			{Name: "Seeking Alpha", URL: "https://seekingalpha.com/market_currents.xml"},
		},
		"forex": {
			{Name: "Forex News", URL: gn(`(forex OR currency OR "exchange rate" OR FX OR "US dollar") when:2d`)},
		},
		"bonds": {
			{Name: "Bond Market", URL: gn(`("bond market" OR "treasury yield" OR "bond yield" OR "fixed income") when:2d`)},
		},
		"commodities": {
			{Name: "Oil & Gas", URL: gn(`(oil price OR OPEC OR "natural gas" OR pipeline OR LNG) when:2d`)},
			{Name: "Gold & Metals", URL: gn(`("gold price" OR "silver price" OR "precious metals" OR "copper price") when:2d`)},
		},
		"crypto": {
			{Name: "CoinDesk", URL: "https://www.coindesk.com/arc/outboundfeeds/rss/"},
			{Name: "Cointelegraph", URL: "https://cointelegraph.com/rss"},
		},
		"centralbanks": {
			{Name: "Federal Reserve", URL: "https://www.federalreserve.gov/feeds/press_all.xml"},
		},
		"economic": {
			{Name: "Economic Data", URL: gn(`(CPI OR inflation OR GDP OR "economic data" OR "jobs report") when:2d`)},
		},
		"ipo": {
			{Name: "IPO News", URL: gn(`(IPO OR "initial public offering" OR "stock market debut") when:2d`)},
		},
		"derivatives": {
			{Name: "Options Market", URL: gn(`("options market" OR "options trading" OR "put call ratio" OR VIX) when:2d`)},
			{Name: "Futures Trading", URL: gn(`("futures trading" OR "S&P 500 futures" OR "Nasdaq futures") when:1d`)},
		},
		"fintech": {
			{Name: "Fintech News", URL: gn(`(fintech OR "payment technology" OR neobank OR "digital banking") when:3d`)},
			{Name: "Trading Tech", URL: gn(`("algorithmic trading" OR "trading platform" OR "quantitative finance") when:7d`)},
			{Name: "Blockchain Finance", URL: gn(`("blockchain finance" OR tokenization OR "digital securities" OR CBDC) when:7d`)},
		},
		"regulation": {
			{Name: "SEC", URL: "https://www.sec.gov/news/pressreleases.rss"},
			{Name: "Financial Regulation", URL: gn("(SEC OR CFTC OR FINRA OR FCA) regulation OR enforcement when:3d")},
			{Name: "Banking Rules", URL: gn(`(Basel OR "capital requirements" OR "banking regulation") when:7d`)},
			{Name: "Crypto Regulation", URL: gn(`(crypto regulation OR "digital asset" regulation OR stablecoin regulation) when:7d`)},
		},
		"institutional": {
			{Name: "Hedge Fund News", URL: gn(`("hedge fund" OR Bridgewater OR Citadel OR Renaissance) when:7d`)},
			{Name: "Private Equity", URL: gn(`("private equity" OR Blackstone OR KKR OR Apollo OR Carlyle) when:3d`)},
			{Name: "Sovereign Wealth", URL: gn(`("sovereign wealth fund" OR "pension fund" OR "institutional investor") when:7d`)},
		},
		"analysis": {
			{Name: "Market Outlook", URL: gn(`("market outlook" OR "stock market forecast" OR "bull market" OR "bear market") when:3d`)},
			{Name: "Risk & Volatility", URL: gn(`(VIX OR "market volatility" OR "risk off" OR "market correction") when:3d`)},
			{Name: "Bank Research", URL: gn(`("Goldman Sachs" OR JPMorgan OR "Morgan Stanley") forecast OR outlook when:3d`)},
		},
		"gccNews": {
			{Name: "Arabian Business", URL: gn("site:arabianbusiness.com (Saudi Arabia OR UAE OR GCC) when:7d")},
			{Name: "The National", URL: gn("site:thenationalnews.com (Abu Dhabi OR UAE OR Saudi) when:7d")},
			{Name: "Arab News", URL: gn("site:arabnews.com (Saudi Arabia OR investment OR infrastructure) when:7d")},
			{Name: "Gulf FDI", URL: gn(`(PIF OR "DP World" OR Mubadala OR ADNOC OR Masdar OR "ACWA Power") infrastructure when:7d`)},
			{Name: "Gulf Investments", URL: gn(`("Saudi Arabia" OR UAE OR "Abu Dhabi") investment infrastructure when:7d`)},
			{Name: "Vision 2030", URL: gn(`"Vision 2030" (project OR investment OR announced) when:14d`)},
		},
	},

	"happy": {
		"positive": {
			{Name: "Good News Network", URL: "https://www.goodnewsnetwork.org/feed/"},
			{Name: "Positive.News", URL: "https://www.positive.news/feed/"},
			{Name: "Reasons to be Cheerful", URL: "https://reasonstobecheerful.world/feed/"},
			{Name: "Optimist Daily", URL: "https://www.optimistdaily.com/feed/"},
		},
		"science": {
			{Name: "ScienceDaily", URL: "https://www.sciencedaily.com/rss/all.xml"},
			{Name: "Nature News", URL: "https://feeds.nature.com/nature/rss/current"},
			{Name: "Singularity Hub", URL: "https://singularityhub.com/feed/"},
		},
	},
}

var intelSources = []domain.Feed{
	{Name: "Defense One", URL: "https://www.defenseone.com/rss/all/"},
	{Name: "Breaking Defense", URL: "https://breakingdefense.com/feed/"},
	{Name: "The War Zone", URL: "https://www.twz.com/feed"},
	{Name: "Defense News", URL: "https://www.defensenews.com/arc/outboundfeeds/rss/?outputType=xml"},
	{Name: "Military Times", URL: "https://www.militarytimes.com/arc/outboundfeeds/rss/?outputType=xml"},
	{Name: "Task & Purpose", URL: "https://taskandpurpose.com/feed/"},
	{Name: "USNI News", URL: "https://news.usni.org/feed"},
	{Name: "gCaptain", URL: "https://gcaptain.com/feed/"},
	{Name: "Oryx OSINT", URL: "https://www.oryxspioenkop.com/feeds/posts/default?alt=rss"},
	{Name: "Foreign Policy", URL: "https://foreignpolicy.com/feed/"},
	{Name: "Foreign Affairs", URL: "https://www.foreignaffairs.com/rss.xml"},
	{Name: "Atlantic Council", URL: "https://www.atlanticcouncil.org/feed/"},
	{Name: "Bellingcat", URL: gn("site:bellingcat.com")},
	{Name: "Krebs Security", URL: "https://krebsonsecurity.com/feed/"},
	{Name: "Arms Control Assn", URL: gn("site:armscontrol.org")},
	{Name: "Bulletin of Atomic Scientists", URL: gn("site:thebulletin.org")},
	{Name: "FAO News", URL: "https://www.fao.org/feeds/fao-newsroom-rss"},
}
