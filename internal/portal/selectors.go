package portal

// Element selectors for the IHC case-search page. The markup is generated by
// DataTables, hence the tblCases_* identifiers for the grid and its paginator.
const (
	selAdvancedSearch = "#lnkAdvncSrch"
	selDateInput      = "#txtDt"
	selSearchButton   = "#btnAdvnSrch"
	selResultsPanel   = "#grdCaseInfo"
	selCasesTable     = "#tblCases"
	selPaginate       = "#tblCases_paginate"
	selNextButton     = "#tblCases_next"
)

// dataRowsReadyScript reports whether the cases table has at least one row
// with meaningful cell text. The table element appears before the grid is
// populated, so waiting for the element alone is not enough.
const dataRowsReadyScript = `
	(() => {
		const tbl = document.querySelector('#tblCases');
		if (!tbl) return false;
		const rows = tbl.querySelectorAll('tbody tr');
		if (rows.length === 0) return false;
		const cells = rows[0].querySelectorAll('td');
		if (cells.length < 3) return false;
		const texts = Array.from(cells).slice(0, 3).map(c => (c.innerText || '').trim());
		return texts.some(t => t !== '' && t !== 'Loading...' && t !== 'Please wait...');
	})()
`

const paginateExistsScript = `document.querySelector('#tblCases_paginate') !== null`

const nextButtonClassScript = `
	(() => {
		const btn = document.querySelector('#tblCases_next');
		return btn ? btn.className : 'disabled';
	})()
`
